package systems

import (
	"math/rand"
	"testing"

	"rogue-server/internal/domain"
)

func TestFindPath_StraightCorridor(t *testing.T) {
	w := parseMap(t, `
		#######
		#.....#
		#######`)

	path := FindPath(w, domain.Position{X: 1, Y: 1}, domain.Position{X: 5, Y: 1})
	if len(path) != 4 {
		t.Fatalf("path length = %d, want 4", len(path))
	}
	if path[len(path)-1] != (domain.Position{X: 5, Y: 1}) {
		t.Errorf("path must end at the goal, got %v", path[len(path)-1])
	}
}

func TestFindPath_DiagonalsAllowed(t *testing.T) {
	w := parseMap(t, `
		#####
		#...#
		#...#
		#...#
		#####`)

	// With diagonal steps the corner-to-corner path takes 2 moves.
	path := FindPath(w, domain.Position{X: 1, Y: 1}, domain.Position{X: 3, Y: 3})
	if len(path) != 2 {
		t.Errorf("path length = %d, want 2", len(path))
	}
}

func TestFindPath_NoRoute(t *testing.T) {
	w := parseMap(t, `
		#######
		#..#..#
		#..#..#
		#######`)

	if path := FindPath(w, domain.Position{X: 1, Y: 1}, domain.Position{X: 5, Y: 1}); path != nil {
		t.Errorf("expected nil path through solid wall, got %v", path)
	}
	if _, ok := StepToward(w, domain.Position{X: 1, Y: 1}, domain.Position{X: 5, Y: 1}); ok {
		t.Error("StepToward should report no route")
	}
}

func TestFindPath_GoalIsSelf(t *testing.T) {
	w := parseMap(t, `
		###
		#.#
		###`)

	pos := domain.Position{X: 1, Y: 1}
	if path := FindPath(w, pos, pos); len(path) != 0 {
		t.Errorf("path to self = %v, want empty", path)
	}
	if _, ok := StepToward(w, pos, pos); ok {
		t.Error("no step needed toward self")
	}
}

func TestFindPath_IntermediateBlockersAvoided(t *testing.T) {
	w := parseMap(t, `
		#####
		#...#
		#...#
		#####`)

	// Blocker in the straight line; path must detour around it.
	blocker := &domain.Entity{
		ID:       domain.NewEntityID(domain.EntityTypeNPC, 1, 0),
		Position: domain.Position{X: 2, Y: 1},
		Blocker:  true,
	}
	w.PlaceEntity(blocker)

	path := FindPath(w, domain.Position{X: 1, Y: 1}, domain.Position{X: 3, Y: 1})
	if path == nil {
		t.Fatal("detour should exist")
	}
	for _, p := range path[:len(path)-1] {
		if p == blocker.Position {
			t.Fatalf("path crosses occupied tile: %v", path)
		}
	}
}

func TestFindPath_OccupiedGoalStillReachable(t *testing.T) {
	w := parseMap(t, `
		#####
		#...#
		#####`)

	// A monster pathing to the player: goal tile is occupied but must
	// still terminate the search.
	target := &domain.Entity{
		ID:       domain.NewEntityID(domain.EntityTypePlayer, 1, 0),
		Position: domain.Position{X: 3, Y: 1},
		Blocker:  true,
	}
	w.PlaceEntity(target)

	path := FindPath(w, domain.Position{X: 1, Y: 1}, target.Position)
	if len(path) == 0 {
		t.Fatal("occupied goal must be reachable")
	}
	if path[len(path)-1] != target.Position {
		t.Errorf("path ends at %v, want %v", path[len(path)-1], target.Position)
	}
}

func TestFindPath_Deterministic(t *testing.T) {
	w := parseMap(t, `
		########
		#......#
		#......#
		#......#
		########`)

	from := domain.Position{X: 1, Y: 1}
	to := domain.Position{X: 6, Y: 3}
	first := FindPath(w, from, to)
	for i := 0; i < 10; i++ {
		again := FindPath(w, from, to)
		if len(again) != len(first) {
			t.Fatalf("path length changed between runs: %d vs %d", len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("path diverged at step %d: %v vs %v", j, again[j], first[j])
			}
		}
	}
}

func TestFindPath_MatchesFloodFillOnRandomMaps(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 50; trial++ {
		w := domain.NewGameWorld(20, 15, 1)
		var floor []domain.Position
		for y := 0; y < 15; y++ {
			for x := 0; x < 20; x++ {
				if rng.Float64() < 0.35 {
					continue // stays wall
				}
				w.SetTerrain(x, y, domain.TerrainFloor)
				floor = append(floor, domain.Position{X: x, Y: y})
			}
		}
		if len(floor) < 2 {
			continue
		}
		start := floor[rng.Intn(len(floor))]
		goal := floor[rng.Intn(len(floor))]
		if start == goal {
			continue
		}

		path := FindPath(w, start, goal)
		reachable := floodReachable(w, start)[goal]
		if (path != nil) != reachable {
			t.Fatalf("trial %d: FindPath found=%v, flood fill says reachable=%v (start %v, goal %v)",
				trial, path != nil, reachable, start, goal)
		}
	}
}

// floodReachable collects every tile reachable from start over the same
// 8-directional adjacency the pathfinder uses.
func floodReachable(w *domain.GameWorld, start domain.Position) map[domain.Position]bool {
	seen := map[domain.Position]bool{start: true}
	queue := []domain.Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				next := cur.Shift(dx, dy)
				if seen[next] || !w.IsWalkable(next.X, next.Y) {
					continue
				}
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return seen
}
