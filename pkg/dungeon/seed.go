package dungeon

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// DeriveSeed детерминированно выводит зерно уровня из мастер-зерна
// и глубины. Каждый уровень получает независимый поток случайности,
// при этом вся партия восстановима из одного мастер-зерна.
func DeriveSeed(master uint64, depth int) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], master)
	binary.LittleEndian.PutUint64(buf[8:16], uint64(depth))
	return xxhash.Sum64(buf[:])
}
