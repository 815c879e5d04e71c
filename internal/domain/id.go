package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// EntityID - упакованный 64-битный идентификатор сущности.
//
// Layout (от старших бит к младшим):
//
//	[63..56] Type  (8 бит)  - тип сущности
//	[55..40] Level (16 бит) - глубина уровня, на котором создана
//	[39..0]  Index (40 бит) - порядковый номер внутри уровня
//
// ID никогда не переиспользуются: счетчик Index монотонный в пределах уровня.
type EntityID uint64

const (
	idTypeShift  = 56
	idLevelShift = 40
	idIndexMask  = (1 << 40) - 1
	idLevelMask  = (1 << 16) - 1
)

// EntityType - старший байт EntityID
type EntityType uint8

const (
	EntityTypeUnknown EntityType = iota
	EntityTypePlayer
	EntityTypeNPC
	EntityTypeItem
)

// NewEntityID собирает ID из составных частей.
func NewEntityID(t EntityType, level int, index uint64) EntityID {
	return EntityID(uint64(t)<<idTypeShift |
		(uint64(level)&idLevelMask)<<idLevelShift |
		index&idIndexMask)
}

func (id EntityID) Type() EntityType {
	return EntityType(id >> idTypeShift)
}

func (id EntityID) Level() int {
	return int((id >> idLevelShift) & idLevelMask)
}

func (id EntityID) Index() uint64 {
	return uint64(id) & idIndexMask
}

func (id EntityID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// MarshalJSON сериализует ID как строку: uint64 не влезает в число JS
// без потери точности.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *EntityID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("entity id must be a string: %w", err)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entity id %q: %w", s, err)
	}
	*id = EntityID(v)
	return nil
}
