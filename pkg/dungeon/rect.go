package dungeon

import "rogue-server/internal/domain"

// Rect - прямоугольная комната. Границы включительны с обеих сторон.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect создает комнату по левому верхнему углу и размерам.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// Intersects - пересекается ли комната с другой (включая касание стенами).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center возвращает центральную точку комнаты.
func (r Rect) Center() domain.Position {
	return domain.Position{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains - лежит ли точка внутри комнаты.
func (r Rect) Contains(p domain.Position) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Width возвращает ширину комнаты в клетках.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height возвращает высоту комнаты в клетках.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }
