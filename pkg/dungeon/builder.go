package dungeon

import (
	"math/rand"

	"rogue-server/internal/domain"
	"rogue-server/pkg/logger"
)

// Максимум существ и предметов на комнату при автозаселении.
const maxSpawnsPerRoom = 4

// LevelBuilder предоставляет fluent API для заселения сгенерированного
// уровня. Сама геометрия приходит готовой из Generate.
type LevelBuilder struct {
	world *domain.GameWorld
	store *domain.EntityStore
	rooms []Rect
	start domain.Position
	rng   *rand.Rand
}

// NewLevel создает builder поверх сгенерированного уровня.
// rng должен быть отдельным от генерации потоком (свое зерно),
// чтобы заселение не зависело от числа попыток генерации.
func NewLevel(gen *GeneratedLevel, store *domain.EntityStore, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		world: gen.World,
		store: store,
		rooms: gen.Rooms,
		start: gen.PlayerStart,
		rng:   rng,
	}
}

// SpawnEnemy спавнит врагов из шаблона по случайным комнатам.
// Первая комната (стартовая) всегда остается пустой.
func (b *LevelBuilder) SpawnEnemy(templateName string, count int) *LevelBuilder {
	template, ok := EnemyTemplates[templateName]
	if !ok {
		logger.WithComponent("dungeon").Warnf("Unknown enemy template %q, skipping", templateName)
		return b
	}
	for i := 0; i < count && len(b.rooms) > 1; i++ {
		roomIdx := 1 + b.rng.Intn(len(b.rooms)-1)
		pos, ok := b.freeTileIn(b.rooms[roomIdx])
		if !ok {
			continue
		}
		e := template.Spawn(b.store, pos)
		b.world.PlaceEntity(e)
	}
	return b
}

// SpawnItem спавнит предметы из шаблона по случайным комнатам.
func (b *LevelBuilder) SpawnItem(templateName string, count int) *LevelBuilder {
	template, ok := ItemTemplates[templateName]
	if !ok {
		logger.WithComponent("dungeon").Warnf("Unknown item template %q, skipping", templateName)
		return b
	}
	for i := 0; i < count && len(b.rooms) > 0; i++ {
		roomIdx := b.rng.Intn(len(b.rooms))
		pos, ok := b.freeTileIn(b.rooms[roomIdx])
		if !ok {
			continue
		}
		e := template.Spawn(b.store, pos)
		b.world.PlaceEntity(e)
	}
	return b
}

// Populate заселяет все комнаты (кроме стартовой) по взвешенной таблице.
// Число обитателей комнаты случайно, от 0 до maxSpawnsPerRoom.
func (b *LevelBuilder) Populate(table *SpawnTable) *LevelBuilder {
	for _, room := range b.rooms[1:] {
		n := b.rng.Intn(maxSpawnsPerRoom + 1)
		for i := 0; i < n; i++ {
			key, isItem := table.Roll(b.rng)
			if key == "" {
				continue
			}
			pos, ok := b.freeTileIn(room)
			if !ok {
				continue
			}
			var e *domain.Entity
			if isItem {
				e = ItemTemplates[key].Spawn(b.store, pos)
			} else {
				e = EnemyTemplates[key].Spawn(b.store, pos)
			}
			b.world.PlaceEntity(e)
		}
	}
	return b
}

// StartPos возвращает стартовую позицию игрока.
func (b *LevelBuilder) StartPos() domain.Position {
	return b.start
}

// Build возвращает заселенный мир и реестр сущностей.
func (b *LevelBuilder) Build() (*domain.GameWorld, *domain.EntityStore) {
	return b.world, b.store
}

// freeTileIn ищет в комнате проходимую и не занятую блокером клетку.
// Макс 20 попыток, иначе считаем комнату переполненной.
func (b *LevelBuilder) freeTileIn(room Rect) (domain.Position, bool) {
	for attempt := 0; attempt < 20; attempt++ {
		pos := domain.Position{
			X: room.X1 + b.rng.Intn(room.Width()),
			Y: room.Y1 + b.rng.Intn(room.Height()),
		}
		if pos == b.start {
			continue
		}
		if b.world.CanEnter(pos) {
			return pos, true
		}
	}
	return domain.Position{}, false
}
