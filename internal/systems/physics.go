package systems

import "rogue-server/internal/domain"

// HasLineOfSight проверяет прямую видимость между двумя точками по
// алгоритму Брезенхэма. Сами конечные точки НЕ считаются преградой:
// стоящий в дверном проеме виден из коридора.
func HasLineOfSight(world *domain.GameWorld, from, to domain.Position) bool {
	return lineClear(world, from, to) || lineClear(world, to, from)
}

// lineClear - свободна ли внутренность отрезка Брезенхэма от from к to.
// Алгоритм несимметричен (линия a->b не совпадает с b->a), поэтому
// HasLineOfSight пробует оба направления.
func lineClear(world *domain.GameWorld, from, to domain.Position) bool {
	x0, y0 := from.X, from.Y
	x1, y1 := to.X, to.Y

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if x0 == x1 && y0 == y1 {
			return true
		}
		// Проверяем только внутренние клетки отрезка.
		if (x0 != from.X || y0 != from.Y) && world.IsOpaque(x0, y0) {
			return false
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
