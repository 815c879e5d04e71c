package systems

import "rogue-server/internal/domain"

// Порядок обхода соседей фиксирован: строки сверху вниз, в строке слева
// направо. От него зависит детерминизм выбора пути при равной длине.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// FindPath ищет кратчайший путь (8 направлений, все шаги стоят одинаково)
// поиском в ширину. Возвращает путь БЕЗ стартовой клетки, включая цель,
// либо nil, если пути нет.
//
// Промежуточные клетки должны быть свободны от блокеров; сама цель
// считается достижимой, даже если занята - иначе монстр не смог бы
// проложить путь к клетке игрока.
func FindPath(world *domain.GameWorld, from, to domain.Position) []domain.Position {
	if from == to {
		return []domain.Position{}
	}
	if !world.IsWalkable(to.X, to.Y) {
		return nil
	}

	type node struct {
		pos  domain.Position
		prev int
	}
	nodes := []node{{pos: from, prev: -1}}
	seen := map[domain.Position]bool{from: true}

	for head := 0; head < len(nodes); head++ {
		cur := nodes[head]
		for _, off := range neighborOffsets {
			next := cur.pos.Shift(off[0], off[1])
			if seen[next] {
				continue
			}
			if next == to {
				// Восстанавливаем путь от цели к старту.
				path := []domain.Position{to}
				for i := head; nodes[i].prev != -1; i = nodes[i].prev {
					path = append(path, nodes[i].pos)
				}
				reverse(path)
				return path
			}
			if !world.CanEnter(next) {
				continue
			}
			seen[next] = true
			nodes = append(nodes, node{pos: next, prev: head})
		}
	}
	return nil
}

// StepToward возвращает первую клетку кратчайшего пути к цели.
// false - пути не существует.
func StepToward(world *domain.GameWorld, from, to domain.Position) (domain.Position, bool) {
	path := FindPath(world, from, to)
	if len(path) == 0 {
		return domain.Position{}, false
	}
	return path[0], true
}

func reverse(path []domain.Position) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
