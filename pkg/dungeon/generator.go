package dungeon

import (
	"fmt"
	"math/rand"

	"rogue-server/internal/domain"
	"rogue-server/pkg/logger"
)

// Параметры генерации. Подобраны под карты от 24x24 и больше.
const (
	MaxRooms    = 30
	MinRoomSize = 4
	MaxRoomSize = 10

	// Минимальный размер карты: одна комната минимального размера
	// плюс внешняя стена с каждой стороны.
	minMapSide = MinRoomSize + 2
)

// Generate строит уровень из зерна. Один и тот же набор (seed, width,
// height) всегда дает байт-в-байт одинаковую карту.
//
// Возвращает мир, стартовую позицию игрока (центр первой комнаты)
// и список комнат для расселения монстров и предметов.
func Generate(seed uint64, width, height, depth int) (*domain.GameWorld, domain.Position, []Rect, error) {
	if width < minMapSide || height < minMapSide {
		return nil, domain.Position{}, nil, fmt.Errorf(
			"%w: %dx%d, need at least %dx%d",
			domain.ErrInvalidDimensions, width, height, minMapSide, minMapSide)
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	world := domain.NewGameWorld(width, height, depth)

	var rooms []Rect
	for i := 0; i < MaxRooms; i++ {
		w := MinRoomSize + rng.Intn(MaxRoomSize-MinRoomSize+1)
		h := MinRoomSize + rng.Intn(MaxRoomSize-MinRoomSize+1)
		if w > width-2 {
			w = width - 2
		}
		if h > height-2 {
			h = height - 2
		}
		x := 1 + rng.Intn(width-w-1)
		y := 1 + rng.Intn(height-h-1)

		room := NewRect(x, y, w, h)
		overlaps := false
		for _, other := range rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(world, room)
		if len(rooms) > 0 {
			// Соединяем с БЛИЖАЙШЕЙ из уже размещенных комнат,
			// а не с предыдущей: коридоры выходят короче.
			nearest := nearestRoom(rooms, room)
			carveCorridor(world, room.Center(), nearest.Center())
		}
		rooms = append(rooms, room)
	}

	if len(rooms) == 0 {
		return nil, domain.Position{}, nil, fmt.Errorf(
			"%w: no rooms could be placed on %dx%d map",
			domain.ErrInvalidDimensions, width, height)
	}

	playerStart := rooms[0].Center()
	stairs := rooms[len(rooms)-1].Center()
	world.SetTerrain(stairs.X, stairs.Y, domain.TerrainStairsDown)

	// Гарантия связности: каждая проходимая клетка достижима со старта.
	if unreachable := countUnreachable(world, playerStart); unreachable > 0 {
		return nil, domain.Position{}, nil, fmt.Errorf(
			"%w: %d walkable tiles unreachable from start (seed=%d)",
			domain.ErrUnreachable, unreachable, seed)
	}

	logger.Log.WithFields(map[string]interface{}{
		"seed":  seed,
		"depth": depth,
		"rooms": len(rooms),
	}).Debug("Level generated")

	return world, playerStart, rooms, nil
}

func carveRoom(world *domain.GameWorld, room Rect) {
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			world.SetTerrain(x, y, domain.TerrainFloor)
		}
	}
}

// nearestRoom ищет комнату с минимальным расстоянием между центрами.
// При равенстве побеждает размещенная раньше (стабильность генерации).
func nearestRoom(rooms []Rect, target Rect) Rect {
	best := rooms[0]
	bestDist := target.Center().DistanceSquaredTo(best.Center())
	for _, r := range rooms[1:] {
		d := target.Center().DistanceSquaredTo(r.Center())
		if d < bestDist {
			best = r
			bestDist = d
		}
	}
	return best
}

// carveCorridor прокладывает Г-образный коридор между двумя точками.
// Из двух вариантов изгиба выбирается тот, что вырезает МЕНЬШЕ новых
// клеток (переиспользует уже прорытое); при равенстве - сначала
// горизонтальный сегмент.
func carveCorridor(world *domain.GameWorld, from, to domain.Position) {
	corner1 := domain.Position{X: to.X, Y: from.Y} // horizontal first
	corner2 := domain.Position{X: from.X, Y: to.Y} // vertical first

	cost1 := segmentCost(world, from, corner1) + segmentCost(world, corner1, to)
	cost2 := segmentCost(world, from, corner2) + segmentCost(world, corner2, to)

	if cost2 < cost1 {
		carveSegment(world, from, corner2)
		carveSegment(world, corner2, to)
		return
	}
	carveSegment(world, from, corner1)
	carveSegment(world, corner1, to)
}

// segmentCost считает, сколько стен пришлось бы прорыть на отрезке.
// Отрезок всегда осевой.
func segmentCost(world *domain.GameWorld, from, to domain.Position) int {
	cost := 0
	walkAxis(from, to, func(x, y int) {
		if !world.IsWalkable(x, y) {
			cost++
		}
	})
	return cost
}

func carveSegment(world *domain.GameWorld, from, to domain.Position) {
	walkAxis(from, to, func(x, y int) {
		if tile := world.TileAt(x, y); tile != nil && tile.Terrain == domain.TerrainWall {
			world.SetTerrain(x, y, domain.TerrainFloor)
		}
	})
}

// walkAxis обходит клетки осевого отрезка, включая оба конца.
func walkAxis(from, to domain.Position, visit func(x, y int)) {
	if from.Y == to.Y {
		step := 1
		if to.X < from.X {
			step = -1
		}
		for x := from.X; ; x += step {
			visit(x, from.Y)
			if x == to.X {
				return
			}
		}
	}
	step := 1
	if to.Y < from.Y {
		step = -1
	}
	for y := from.Y; ; y += step {
		visit(from.X, y)
		if y == to.Y {
			return
		}
	}
}

// countUnreachable - flood fill от старта по проходимым клеткам;
// возвращает число проходимых клеток, до которых не добрались.
func countUnreachable(world *domain.GameWorld, start domain.Position) int {
	visited := make([]bool, len(world.Tiles))
	queue := []domain.Position{start}
	visited[world.Index(start.X, start.Y)] = true
	reached := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		reached++

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := cur.X+dx, cur.Y+dy
				if !world.IsWalkable(nx, ny) {
					continue
				}
				idx := world.Index(nx, ny)
				if visited[idx] {
					continue
				}
				visited[idx] = true
				queue = append(queue, domain.Position{X: nx, Y: ny})
			}
		}
	}

	total := 0
	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			if world.IsWalkable(x, y) {
				total++
			}
		}
	}
	return total - reached
}
