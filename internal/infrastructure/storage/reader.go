package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"rogue-server/internal/domain"
)

// Load читает снимок партии из файла.
func (s *SnapshotService) Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*Snapshot, error) {
	// 1. Заголовок целиком
	var header SnapshotFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	// 2. JSON-блок карты
	worldData := make([]byte, header.WorldLen)
	if _, err := io.ReadFull(r, worldData); err != nil {
		return nil, fmt.Errorf("failed to read world: %w", err)
	}
	world := &domain.GameWorld{}
	if err := json.Unmarshal(worldData, world); err != nil {
		return nil, fmt.Errorf("failed to decode world: %w", err)
	}
	// Пространственный индекс не сериализуется, пересоздаем пустым.
	world.RehydrateIndex()

	// 3. JSON-блок сущностей
	entitiesData := make([]byte, header.EntitiesLen)
	if _, err := io.ReadFull(r, entitiesData); err != nil {
		return nil, fmt.Errorf("failed to read entities: %w", err)
	}
	var entities []*domain.Entity
	if err := json.Unmarshal(entitiesData, &entities); err != nil {
		return nil, fmt.Errorf("failed to decode entities: %w", err)
	}

	return &Snapshot{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Depth:     int(header.Depth),
		Turn:      int(header.Turn),
		PlayerID:  domain.EntityID(header.PlayerID),
		World:     world,
		Entities:  entities,
	}, nil
}

// Restore собирает рабочие структуры уровня из снимка: реестр
// сущностей и пространственный индекс. Возвращает также игрока.
func (snap *Snapshot) Restore() (*domain.GameWorld, *domain.EntityStore, *domain.Entity, error) {
	store := domain.NewEntityStore(snap.Depth)
	var player *domain.Entity

	for _, e := range snap.Entities {
		store.Adopt(e)
		// Кэш FOV в снимок не попадает, требуем пересчет.
		if e.Vision != nil {
			e.Vision.CachedVisibleTiles = make(map[domain.Position]bool)
			e.Vision.IsDirty = true
		}
		// Предметы в рюкзаках на карте не стоят.
		if e.Item != nil && e.Item.CarriedBy != nil {
			continue
		}
		snap.World.PlaceEntity(e)
		if e.ID == snap.PlayerID {
			player = e
		}
	}

	if player == nil {
		return nil, nil, nil, fmt.Errorf("snapshot has no player entity %s", snap.PlayerID)
	}
	return snap.World, store, player, nil
}
