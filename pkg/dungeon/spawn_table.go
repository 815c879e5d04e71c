package dungeon

import "math/rand"

// spawnEntry - одна строка взвешенной таблицы.
type spawnEntry struct {
	key string
	// weight - базовый вес; perDepth добавляется за каждый уровень глубины.
	weight   int
	perDepth int
	isItem   bool
}

// SpawnTable - взвешенная таблица расселения. Чем глубже уровень, тем
// чаще выпадают тяжелые монстры.
type SpawnTable struct {
	entries []spawnEntry
	depth   int
}

// NewSpawnTable собирает таблицу для заданной глубины.
func NewSpawnTable(depth int) *SpawnTable {
	return &SpawnTable{
		depth: depth,
		entries: []spawnEntry{
			{key: "goblin", weight: 10},
			{key: "orc", weight: 1, perDepth: 2},
			{key: "troll", weight: 0, perDepth: 1},
			{key: "health_potion", weight: 7, isItem: true},
			{key: "greater_health_potion", weight: 0, perDepth: 1, isItem: true},
		},
	}
}

// Roll выбирает ключ шаблона пропорционально весам. Возвращает ключ
// и признак "это предмет". Пустой ключ - таблица выродилась в нули.
func (t *SpawnTable) Roll(rng *rand.Rand) (key string, isItem bool) {
	total := 0
	for _, e := range t.entries {
		total += t.effectiveWeight(e)
	}
	if total <= 0 {
		return "", false
	}

	roll := rng.Intn(total)
	for _, e := range t.entries {
		w := t.effectiveWeight(e)
		if roll < w {
			return e.key, e.isItem
		}
		roll -= w
	}
	return "", false
}

func (t *SpawnTable) effectiveWeight(e spawnEntry) int {
	w := e.weight + e.perDepth*t.depth
	if w < 0 {
		return 0
	}
	return w
}
