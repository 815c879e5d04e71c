package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"rogue-server/internal/domain"
)

const (
	MagicHeader string = `RGSV` // 4 байта
	Version1    uint32 = 1
)

// Snapshot - полное состояние партии на границе хода. Сохраняется
// только в StateAwaitingInput: посреди хода целостность не гарантируется.
type Snapshot struct {
	Seed      uint64
	Timestamp int64
	Depth     int
	Turn      int
	PlayerID  domain.EntityID
	World     *domain.GameWorld
	Entities  []*domain.Entity
}

// SnapshotFileHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: внутри только числа и массивы.
type SnapshotFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Seed        uint64  // 8 байт
	Timestamp   int64   // 8 байт
	PlayerID    uint64  // 8 байт
	Depth       int32   // 4 байта
	Turn        int32   // 4 байта
	WorldLen    uint32  // 4 байта
	EntitiesLen uint32  // 4 байта
}

// SnapshotService пишет и читает снимки партий на диске.
type SnapshotService struct {
	SaveDir string
}

func NewSnapshotService(dir string) *SnapshotService {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &SnapshotService{SaveDir: dir}
}

// Save сериализует снимок в файл. Имя файла детерминировано зерном,
// глубиной и временем.
func (s *SnapshotService) Save(snap *Snapshot) (string, error) {
	filename := fmt.Sprintf("save_%d_d%d_%d.rgsv", snap.Seed, snap.Depth, snap.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, snap); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, snap *Snapshot) error {
	// Тело - два JSON-блока: карта и сущности. Бинарный заголовок
	// несет длины, чтобы читать без догадок.
	worldData, err := json.Marshal(snap.World)
	if err != nil {
		return fmt.Errorf("marshal world: %w", err)
	}
	entitiesData, err := json.Marshal(snap.Entities)
	if err != nil {
		return fmt.Errorf("marshal entities: %w", err)
	}

	header := SnapshotFileHeader{
		Version:     Version1,
		Seed:        snap.Seed,
		Timestamp:   snap.Timestamp,
		PlayerID:    uint64(snap.PlayerID),
		Depth:       int32(snap.Depth),
		Turn:        int32(snap.Turn),
		WorldLen:    uint32(len(worldData)),
		EntitiesLen: uint32(len(entitiesData)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(worldData); err != nil {
		return fmt.Errorf("failed to write world: %w", err)
	}
	if _, err := w.Write(entitiesData); err != nil {
		return fmt.Errorf("failed to write entities: %w", err)
	}
	return nil
}
