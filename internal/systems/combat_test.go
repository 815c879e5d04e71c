package systems

import (
	"testing"

	"rogue-server/internal/domain"
)

func TestMeleeDamage_MinimumOne(t *testing.T) {
	weak := &domain.StatsComponent{Strength: 1}
	tank := &domain.StatsComponent{Defense: 10}
	if dmg := MeleeDamage(weak, tank); dmg != 1 {
		t.Errorf("damage = %d, want minimum 1", dmg)
	}

	strong := &domain.StatsComponent{Strength: 8}
	soft := &domain.StatsComponent{Defense: 2}
	if dmg := MeleeDamage(strong, soft); dmg != 6 {
		t.Errorf("damage = %d, want 6", dmg)
	}
}

func TestDamageQueue_Aggregates(t *testing.T) {
	store := domain.NewEntityStore(1)
	victim := store.Create(domain.EntityTypeNPC, "victim", domain.Position{})
	victim.Stats = &domain.StatsComponent{MaxHP: 10, HP: 10}
	victim.Behavior = &domain.BehaviorComponent{Kind: domain.BehaviorHostile}

	q := NewDamageQueue()
	q.Add(victim.ID, 3)
	q.Add(victim.ID, 4)

	// Nothing applied until resolution.
	if victim.Stats.HP != 10 {
		t.Fatal("damage applied before Resolve")
	}

	dead := q.Resolve(store)
	if victim.Stats.HP != 3 {
		t.Errorf("HP = %d, want 3", victim.Stats.HP)
	}
	if len(dead) != 0 {
		t.Errorf("no one should have died, got %v", dead)
	}
	if !q.Empty() {
		t.Error("queue should be empty after Resolve")
	}
}

func TestDamageQueue_LethalDestroysNPC(t *testing.T) {
	store := domain.NewEntityStore(1)
	victim := store.Create(domain.EntityTypeNPC, "victim", domain.Position{})
	victim.Stats = &domain.StatsComponent{MaxHP: 5, HP: 5}
	victim.Behavior = &domain.BehaviorComponent{Kind: domain.BehaviorHostile}

	q := NewDamageQueue()
	q.Add(victim.ID, 9)
	dead := q.Resolve(store)

	if len(dead) != 1 || dead[0] != victim.ID {
		t.Fatalf("dead = %v", dead)
	}
	if !store.IsPendingDestroy(victim.ID) {
		t.Error("lethal damage must mark NPC for destruction")
	}
	if victim.Stats.HP != 0 {
		t.Errorf("HP clamped at %d, want 0", victim.Stats.HP)
	}
}

func TestDamageQueue_PlayerStaysInRegistry(t *testing.T) {
	store := domain.NewEntityStore(1)
	player := store.Create(domain.EntityTypePlayer, "hero", domain.Position{})
	player.Stats = &domain.StatsComponent{MaxHP: 5, HP: 5}
	player.Behavior = &domain.BehaviorComponent{Kind: domain.BehaviorPlayer}

	q := NewDamageQueue()
	q.Add(player.ID, 99)
	dead := q.Resolve(store)

	if len(dead) != 1 {
		t.Fatal("player death not reported")
	}
	if store.IsPendingDestroy(player.ID) {
		t.Error("player entity must not be destroyed on death")
	}
	if !player.Stats.IsDead() {
		t.Error("player stats should read dead")
	}
}

func TestDamageQueue_MutualExchangeBothApply(t *testing.T) {
	store := domain.NewEntityStore(1)
	a := store.Create(domain.EntityTypeNPC, "a", domain.Position{})
	a.Stats = &domain.StatsComponent{MaxHP: 4, HP: 4, Strength: 9}
	a.Behavior = &domain.BehaviorComponent{Kind: domain.BehaviorHostile}
	b := store.Create(domain.EntityTypeNPC, "b", domain.Position{})
	b.Stats = &domain.StatsComponent{MaxHP: 4, HP: 4, Strength: 9}
	b.Behavior = &domain.BehaviorComponent{Kind: domain.BehaviorHostile}

	// Lethal blows in both directions within one turn: deferral means
	// both land even though either victim "dies" first.
	q := NewDamageQueue()
	QueueMelee(q, a, b)
	QueueMelee(q, b, a)
	dead := q.Resolve(store)

	if len(dead) != 2 {
		t.Errorf("both sides should die, dead = %v", dead)
	}
}
