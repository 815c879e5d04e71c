package domain

// GameWorld - тайловая карта одного уровня плюс пространственный индекс
// сущностей на ней.
type GameWorld struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Depth  int    `json:"depth"`
	Tiles  []Tile `json:"tiles"`

	// spatialHash - индекс клетки -> сущности, стоящие на ней.
	// Поддерживается методами PlaceEntity / MoveEntity / RemoveEntity.
	spatialHash map[int][]*Entity
}

// NewGameWorld создает карту, целиком заполненную стенами.
func NewGameWorld(width, height, depth int) *GameWorld {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = NewTile(TerrainWall)
	}
	return &GameWorld{
		Width:       width,
		Height:      height,
		Depth:       depth,
		Tiles:       tiles,
		spatialHash: make(map[int][]*Entity),
	}
}

// RehydrateIndex пересоздает пустой пространственный индекс. Нужен
// после десериализации: JSON не переносит приватный spatialHash.
func (w *GameWorld) RehydrateIndex() {
	w.spatialHash = make(map[int][]*Entity)
}

// Index преобразует координаты в индекс плоского массива (row-major).
func (w *GameWorld) Index(x, y int) int {
	return y*w.Width + x
}

// InBounds - лежит ли точка внутри карты.
func (w *GameWorld) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// TileAt возвращает указатель на клетку или nil за границей карты.
func (w *GameWorld) TileAt(x, y int) *Tile {
	if !w.InBounds(x, y) {
		return nil
	}
	return &w.Tiles[w.Index(x, y)]
}

// SetTerrain меняет местность клетки, заново выводя флаги проходимости.
func (w *GameWorld) SetTerrain(x, y int, terrain TerrainType) {
	if !w.InBounds(x, y) {
		return
	}
	tile := &w.Tiles[w.Index(x, y)]
	revealed, visible := tile.Revealed, tile.Visible
	*tile = NewTile(terrain)
	tile.Revealed, tile.Visible = revealed, visible
}

// IsWalkable - можно ли встать на клетку (только местность, без сущностей).
// Точки за границей карты непроходимы.
func (w *GameWorld) IsWalkable(x, y int) bool {
	tile := w.TileAt(x, y)
	return tile != nil && !tile.BlocksMovement
}

// IsOpaque - блокирует ли клетка обзор. За границей карты - блокирует.
func (w *GameWorld) IsOpaque(x, y int) bool {
	tile := w.TileAt(x, y)
	return tile == nil || tile.BlocksSight
}

// PlaceEntity регистрирует сущность в пространственном индексе.
func (w *GameWorld) PlaceEntity(e *Entity) {
	if !w.InBounds(e.Position.X, e.Position.Y) {
		return
	}
	idx := w.Index(e.Position.X, e.Position.Y)
	w.spatialHash[idx] = append(w.spatialHash[idx], e)
}

// RemoveEntity убирает сущность из пространственного индекса.
func (w *GameWorld) RemoveEntity(e *Entity) {
	idx := w.Index(e.Position.X, e.Position.Y)
	bucket := w.spatialHash[idx]
	for i, other := range bucket {
		if other.ID == e.ID {
			w.spatialHash[idx] = append(bucket[:i], bucket[i+1:]...)
			if len(w.spatialHash[idx]) == 0 {
				delete(w.spatialHash, idx)
			}
			return
		}
	}
}

// MoveEntity переносит сущность в новую клетку, обновляя индекс.
// Позиция сущности меняется ТОЛЬКО здесь, иначе индекс разъедется.
func (w *GameWorld) MoveEntity(e *Entity, to Position) {
	w.RemoveEntity(e)
	e.Position = to
	w.PlaceEntity(e)
}

// EntitiesAt возвращает сущности, стоящие на клетке, в порядке размещения.
func (w *GameWorld) EntitiesAt(pos Position) []*Entity {
	if !w.InBounds(pos.X, pos.Y) {
		return nil
	}
	return w.spatialHash[w.Index(pos.X, pos.Y)]
}

// BlockerAt возвращает блокирующую сущность на клетке или nil.
func (w *GameWorld) BlockerAt(pos Position) *Entity {
	for _, e := range w.EntitiesAt(pos) {
		if e.Blocker {
			return e
		}
	}
	return nil
}

// CanEnter - клетка проходима по местности и не занята блокером.
func (w *GameWorld) CanEnter(pos Position) bool {
	return w.IsWalkable(pos.X, pos.Y) && w.BlockerAt(pos) == nil
}

// ResetVisibility сбрасывает флаг Visible у всех клеток перед
// пересчетом FOV. Revealed сохраняется.
func (w *GameWorld) ResetVisibility() {
	for i := range w.Tiles {
		w.Tiles[i].Visible = false
	}
}
