package systems

import "rogue-server/internal/domain"

// ComputeFOV возвращает множество клеток, видимых из origin в пределах
// радиуса (евклидова метрика).
//
// Видимость симметрична: клетка A видит B тогда и только тогда, когда
// B видит A. Это свойство дает двунаправленная трассировка в
// HasLineOfSight - одиночный луч Брезенхэма им не обладает.
// Непрозрачные клетки (стены) видны сами, но заслоняют то, что за ними.
func ComputeFOV(world *domain.GameWorld, origin domain.Position, radius int) map[domain.Position]bool {
	visible := make(map[domain.Position]bool)
	visible[origin] = true

	radiusSq := radius * radius
	for y := origin.Y - radius; y <= origin.Y+radius; y++ {
		for x := origin.X - radius; x <= origin.X+radius; x++ {
			if !world.InBounds(x, y) {
				continue
			}
			pos := domain.Position{X: x, Y: y}
			if origin.DistanceSquaredTo(pos) > radiusSq {
				continue
			}
			if HasLineOfSight(world, origin, pos) {
				visible[pos] = true
			}
		}
	}
	return visible
}

// RecomputeVision пересчитывает FOV сущности, если кэш устарел.
// Возвращает актуальное множество видимых клеток.
func RecomputeVision(world *domain.GameWorld, e *domain.Entity) map[domain.Position]bool {
	if e.Vision == nil {
		return nil
	}
	if !e.Vision.IsDirty {
		return e.Vision.CachedVisibleTiles
	}
	e.Vision.CachedVisibleTiles = ComputeFOV(world, e.Position, e.Vision.Radius)
	e.Vision.IsDirty = false
	return e.Vision.CachedVisibleTiles
}

// ApplyVisibility проецирует поле зрения игрока на карту: сбрасывает
// Visible у всех клеток и помечает видимые как Visible + Revealed.
// Revealed накапливается между ходами (туман войны).
func ApplyVisibility(world *domain.GameWorld, player *domain.Entity) {
	visible := RecomputeVision(world, player)
	world.ResetVisibility()
	for pos := range visible {
		tile := world.TileAt(pos.X, pos.Y)
		if tile == nil {
			continue
		}
		tile.Visible = true
		tile.Revealed = true
	}
}

// MarkVisionDirty помечает кэш FOV сущности на пересчет. Зовется при
// каждом перемещении и при изменении местности.
func MarkVisionDirty(e *domain.Entity) {
	if e.Vision != nil {
		e.Vision.IsDirty = true
	}
}

// InvalidateAllVision сбрасывает кэши FOV всех сущностей уровня.
// Зовется при постройке уровня и когда меняется сама карта (SetTerrain).
func InvalidateAllVision(store *domain.EntityStore) {
	store.EachWith(domain.MaskVision, func(e *domain.Entity) bool {
		e.Vision.IsDirty = true
		return true
	})
}
