package domain

// TerrainType - тип местности клетки
type TerrainType uint8

const (
	TerrainWall TerrainType = iota
	TerrainFloor
	TerrainStairsDown
)

// Маппинг для логов Domain -> String
var terrainToString = map[TerrainType]string{
	TerrainWall:       "WALL",
	TerrainFloor:      "FLOOR",
	TerrainStairsDown: "STAIRS_DOWN",
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (t TerrainType) String() string {
	if val, ok := terrainToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// Tile - одна клетка карты.
//
// Флаги BlocksMovement и BlocksSight детерминированно выводятся из Terrain
// в NewTile и НЕ меняются независимо. Единственный легальный способ их
// изменить - SetTerrain у GameWorld (событие, меняющее саму местность).
type Tile struct {
	Terrain TerrainType `json:"terrain"`

	// Revealed - клетка когда-либо была увидена (туман войны).
	Revealed bool `json:"revealed"`
	// Visible - клетка видна в ТЕКУЩИЙ ход. Сбрасывается при каждом пересчете FOV.
	Visible bool `json:"visible"`

	BlocksMovement bool `json:"blocksMovement"`
	BlocksSight    bool `json:"blocksSight"`
}

// NewTile создает клетку с выведенными из местности флагами.
func NewTile(terrain TerrainType) Tile {
	blocks := terrain == TerrainWall
	return Tile{
		Terrain:        terrain,
		BlocksMovement: blocks,
		BlocksSight:    blocks,
	}
}
