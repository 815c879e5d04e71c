package systems

import (
	"errors"
	"testing"

	"rogue-server/internal/domain"
)

func spawnHostile(store *domain.EntityStore, w *domain.GameWorld, pos domain.Position) *domain.Entity {
	npc := store.Create(domain.EntityTypeNPC, "orc", pos)
	npc.Stats = &domain.StatsComponent{MaxHP: 10, HP: 10, Strength: 4}
	npc.Behavior = &domain.BehaviorComponent{Kind: domain.BehaviorHostile}
	npc.Vision = domain.NewVisionComponent(8)
	npc.Blocker = true
	w.PlaceEntity(npc)
	return npc
}

func spawnPlayer(store *domain.EntityStore, w *domain.GameWorld, pos domain.Position) *domain.Entity {
	p := store.Create(domain.EntityTypePlayer, "hero", pos)
	p.Stats = &domain.StatsComponent{MaxHP: 30, HP: 30, Strength: 5}
	p.Behavior = &domain.BehaviorComponent{Kind: domain.BehaviorPlayer}
	p.Vision = domain.NewVisionComponent(8)
	p.Blocker = true
	w.PlaceEntity(p)
	return p
}

func TestRunNPC_ApproachesVisiblePlayer(t *testing.T) {
	w := parseMap(t, `
		#########
		#.......#
		#########`)
	store := domain.NewEntityStore(1)
	player := spawnPlayer(store, w, domain.Position{X: 1, Y: 1})
	npc := spawnHostile(store, w, domain.Position{X: 6, Y: 1})

	q := NewDamageQueue()
	RunNPC(w, npc, player, q)

	if npc.Position != (domain.Position{X: 5, Y: 1}) {
		t.Errorf("npc at %v, want one step closer", npc.Position)
	}
	if npc.Behavior.LastHeading == nil {
		t.Error("pursuit heading should be recorded")
	}
	if !q.Empty() {
		t.Error("no attack at range")
	}
}

func TestRunNPC_AttacksAdjacentPlayer(t *testing.T) {
	w := parseMap(t, `
		#####
		#...#
		#####`)
	store := domain.NewEntityStore(1)
	player := spawnPlayer(store, w, domain.Position{X: 1, Y: 1})
	npc := spawnHostile(store, w, domain.Position{X: 2, Y: 1})

	q := NewDamageQueue()
	RunNPC(w, npc, player, q)

	if npc.Position != (domain.Position{X: 2, Y: 1}) {
		t.Error("attacking npc should not move")
	}
	if q.Empty() {
		t.Fatal("adjacent npc must queue an attack")
	}

	q.Resolve(store)
	if player.Stats.HP >= player.Stats.MaxHP {
		t.Error("player took no damage")
	}
}

func TestRunNPC_DriftsOnLastHeading(t *testing.T) {
	w := parseMap(t, `
		#########
		#.......#
		#########`)
	store := domain.NewEntityStore(1)
	// Player hidden far outside any vision radius.
	player := spawnPlayer(store, w, domain.Position{X: 1, Y: 1})
	npc := spawnHostile(store, w, domain.Position{X: 4, Y: 1})
	npc.Vision.Radius = 1
	npc.Behavior.LastHeading = &domain.Position{X: 1, Y: 0}

	q := NewDamageQueue()
	RunNPC(w, npc, player, q)

	if npc.Position != (domain.Position{X: 5, Y: 1}) {
		t.Errorf("npc at %v, want drift to (5,1)", npc.Position)
	}

	// Drift into the wall clears the heading.
	npc2 := spawnHostile(store, w, domain.Position{X: 7, Y: 1})
	npc2.Vision.Radius = 1
	npc2.Behavior.LastHeading = &domain.Position{X: 1, Y: 0}
	RunNPC(w, npc2, player, q)

	if npc2.Position != (domain.Position{X: 7, Y: 1}) {
		t.Error("blocked drift should not move")
	}
	if npc2.Behavior.LastHeading != nil {
		t.Error("blocked drift should clear the heading")
	}
}

func TestRunNPC_IgnoresDeadPlayer(t *testing.T) {
	w := parseMap(t, `
		#####
		#...#
		#####`)
	store := domain.NewEntityStore(1)
	player := spawnPlayer(store, w, domain.Position{X: 1, Y: 1})
	player.Stats.HP = 0
	npc := spawnHostile(store, w, domain.Position{X: 3, Y: 1})

	q := NewDamageQueue()
	RunNPC(w, npc, player, q)

	if npc.Position != (domain.Position{X: 3, Y: 1}) || !q.Empty() {
		t.Error("dead player should not be pursued")
	}
}

func TestTryMove_InvalidLeavesWorldUntouched(t *testing.T) {
	w := parseMap(t, `
		#####
		#...#
		#####`)
	store := domain.NewEntityStore(1)
	player := spawnPlayer(store, w, domain.Position{X: 1, Y: 1})

	// Into the wall.
	_, err := TryMove(w, player, 0, -1)
	if !errors.Is(err, domain.ErrInvalidAction) {
		t.Fatalf("err = %v, want ErrInvalidAction", err)
	}
	if player.Position != (domain.Position{X: 1, Y: 1}) {
		t.Error("failed move changed position")
	}

	// Oversized delta.
	if _, err := TryMove(w, player, 2, 0); !errors.Is(err, domain.ErrInvalidAction) {
		t.Errorf("oversized delta: err = %v", err)
	}
	// Zero delta.
	if _, err := TryMove(w, player, 0, 0); !errors.Is(err, domain.ErrInvalidAction) {
		t.Errorf("zero delta: err = %v", err)
	}
}

func TestTryMove_BumpIntoCreature(t *testing.T) {
	w := parseMap(t, `
		#####
		#...#
		#####`)
	store := domain.NewEntityStore(1)
	player := spawnPlayer(store, w, domain.Position{X: 1, Y: 1})
	npc := spawnHostile(store, w, domain.Position{X: 2, Y: 1})

	res, err := TryMove(w, player, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != MoveBumped || res.Target == nil || res.Target.ID != npc.ID {
		t.Errorf("expected bump into npc, got %+v", res)
	}
	if player.Position != (domain.Position{X: 1, Y: 1}) {
		t.Error("bump must not move the attacker")
	}
}
