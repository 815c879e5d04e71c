package domain

// Position - координаты на сетке уровня
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceSquaredTo - квадрат евклидова расстояния. Используем для
// сравнений радиусов, чтобы не звать Sqrt в горячих циклах FOV и ИИ.
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// IsAdjacent - находится ли другая точка в зоне ближней атаки
// (8 соседних клеток, по Чебышеву).
func (p Position) IsAdjacent(other Position) bool {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	return dx <= 1 && dy <= 1 && !(dx == 0 && dy == 0)
}

// Shift возвращает точку, смещенную на (dx, dy).
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DirectionTo возвращает единичный шаг (дельту по знаку) в сторону цели.
// Используется ИИ как грубое направление, когда пути нет.
func (p Position) DirectionTo(other Position) (dx, dy int) {
	return sign(other.X - p.X), sign(other.Y - p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
