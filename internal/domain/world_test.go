package domain

import "testing"

func TestNewTile_DerivesFlagsFromTerrain(t *testing.T) {
	cases := []struct {
		terrain TerrainType
		blocks  bool
	}{
		{TerrainWall, true},
		{TerrainFloor, false},
		{TerrainStairsDown, false},
	}
	for _, c := range cases {
		tile := NewTile(c.terrain)
		if tile.BlocksMovement != c.blocks || tile.BlocksSight != c.blocks {
			t.Errorf("%v: BlocksMovement=%v BlocksSight=%v, want both %v",
				c.terrain, tile.BlocksMovement, tile.BlocksSight, c.blocks)
		}
	}
}

func TestGameWorld_SetTerrainPreservesFog(t *testing.T) {
	w := NewGameWorld(5, 5, 1)
	tile := w.TileAt(2, 2)
	tile.Revealed = true
	tile.Visible = true

	w.SetTerrain(2, 2, TerrainFloor)

	tile = w.TileAt(2, 2)
	if !tile.Revealed || !tile.Visible {
		t.Error("SetTerrain dropped fog-of-war flags")
	}
	if tile.BlocksMovement {
		t.Error("floor should not block movement")
	}
}

func TestGameWorld_OutOfBounds(t *testing.T) {
	w := NewGameWorld(5, 5, 1)

	if w.TileAt(-1, 0) != nil {
		t.Error("TileAt out of bounds should be nil")
	}
	if w.IsWalkable(5, 0) {
		t.Error("out of bounds must not be walkable")
	}
	if !w.IsOpaque(0, -1) {
		t.Error("out of bounds must be opaque")
	}
}

func TestGameWorld_SpatialIndexFollowsMove(t *testing.T) {
	w := NewGameWorld(5, 5, 1)
	for x := 0; x < 5; x++ {
		w.SetTerrain(x, 2, TerrainFloor)
	}

	e := &Entity{ID: NewEntityID(EntityTypeNPC, 1, 0), Position: Position{X: 1, Y: 2}, Blocker: true}
	w.PlaceEntity(e)

	if w.BlockerAt(Position{X: 1, Y: 2}) == nil {
		t.Fatal("blocker not found at origin")
	}

	w.MoveEntity(e, Position{X: 3, Y: 2})

	if w.BlockerAt(Position{X: 1, Y: 2}) != nil {
		t.Error("blocker still indexed at old tile")
	}
	if w.BlockerAt(Position{X: 3, Y: 2}) == nil {
		t.Error("blocker missing at new tile")
	}
	if e.Position != (Position{X: 3, Y: 2}) {
		t.Errorf("entity position = %v", e.Position)
	}
}

func TestGameWorld_CanEnter(t *testing.T) {
	w := NewGameWorld(5, 5, 1)
	w.SetTerrain(1, 1, TerrainFloor)
	w.SetTerrain(2, 1, TerrainFloor)

	if !w.CanEnter(Position{X: 1, Y: 1}) {
		t.Error("empty floor should be enterable")
	}
	if w.CanEnter(Position{X: 0, Y: 0}) {
		t.Error("wall should not be enterable")
	}

	blocker := &Entity{ID: NewEntityID(EntityTypeNPC, 1, 0), Position: Position{X: 2, Y: 1}, Blocker: true}
	w.PlaceEntity(blocker)
	if w.CanEnter(Position{X: 2, Y: 1}) {
		t.Error("occupied tile should not be enterable")
	}
}

func TestPosition_Adjacency(t *testing.T) {
	center := Position{X: 5, Y: 5}
	if !center.IsAdjacent(Position{X: 4, Y: 4}) {
		t.Error("diagonal neighbor should be adjacent")
	}
	if center.IsAdjacent(center) {
		t.Error("a position is not adjacent to itself")
	}
	if center.IsAdjacent(Position{X: 7, Y: 5}) {
		t.Error("two tiles away is not adjacent")
	}
}

func TestPosition_DirectionTo(t *testing.T) {
	from := Position{X: 5, Y: 5}
	cases := []struct {
		to     Position
		dx, dy int
	}{
		{Position{X: 9, Y: 5}, 1, 0},
		{Position{X: 1, Y: 5}, -1, 0},
		{Position{X: 5, Y: 9}, 0, 1},
		{Position{X: 2, Y: 1}, -1, -1},
		{Position{X: 5, Y: 5}, 0, 0},
	}
	for _, c := range cases {
		dx, dy := from.DirectionTo(c.to)
		if dx != c.dx || dy != c.dy {
			t.Errorf("DirectionTo(%v) = (%d,%d), want (%d,%d)", c.to, dx, dy, c.dx, c.dy)
		}
	}
}
