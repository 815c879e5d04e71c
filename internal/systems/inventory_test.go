package systems

import (
	"errors"
	"testing"

	"rogue-server/internal/domain"
)

func spawnPotion(store *domain.EntityStore, w *domain.GameWorld, pos domain.Position, power int) *domain.Entity {
	item := store.Create(domain.EntityTypeItem, "potion", pos)
	item.Item = &domain.ItemComponent{Effect: domain.EffectHeal, Power: power, Consumable: true}
	w.PlaceEntity(item)
	return item
}

func TestInventory_PickupUseDropCycle(t *testing.T) {
	w := parseMap(t, `
		#####
		#...#
		#####`)
	store := domain.NewEntityStore(1)
	player := spawnPlayer(store, w, domain.Position{X: 1, Y: 1})
	player.Inventory = &domain.InventoryComponent{Capacity: 5}
	potion := spawnPotion(store, w, domain.Position{X: 1, Y: 1}, 8)

	if err := PickupItem(w, store, player, potion.ID); err != nil {
		t.Fatal(err)
	}
	if len(player.Inventory.Items) != 1 {
		t.Fatal("potion not in inventory")
	}
	if len(w.EntitiesAt(domain.Position{X: 1, Y: 1})) != 1 {
		t.Error("picked up item still on the map")
	}

	// Full health: using the potion is rejected without consuming it.
	err := UseItem(store, player, potion.ID)
	if !errors.Is(err, domain.ErrInvalidAction) {
		t.Fatalf("use at full health: err = %v", err)
	}
	if len(player.Inventory.Items) != 1 {
		t.Error("rejected use consumed the potion")
	}

	player.Stats.HP = 10
	if err := UseItem(store, player, potion.ID); err != nil {
		t.Fatal(err)
	}
	if player.Stats.HP != 18 {
		t.Errorf("HP = %d, want 18", player.Stats.HP)
	}
	if len(player.Inventory.Items) != 0 {
		t.Error("consumable not removed from inventory")
	}
	if !store.IsPendingDestroy(potion.ID) {
		t.Error("consumable not marked for destruction")
	}
}

func TestInventory_PickupRules(t *testing.T) {
	w := parseMap(t, `
		#####
		#...#
		#####`)
	store := domain.NewEntityStore(1)
	player := spawnPlayer(store, w, domain.Position{X: 1, Y: 1})
	player.Inventory = &domain.InventoryComponent{Capacity: 1}

	// Not underfoot.
	far := spawnPotion(store, w, domain.Position{X: 3, Y: 1}, 5)
	if err := PickupItem(w, store, player, far.ID); !errors.Is(err, domain.ErrInvalidAction) {
		t.Errorf("distant pickup: err = %v", err)
	}

	// Capacity limit.
	near := spawnPotion(store, w, domain.Position{X: 1, Y: 1}, 5)
	if err := PickupItem(w, store, player, near.ID); err != nil {
		t.Fatal(err)
	}
	second := spawnPotion(store, w, domain.Position{X: 1, Y: 1}, 5)
	if err := PickupItem(w, store, player, second.ID); !errors.Is(err, domain.ErrInvalidAction) {
		t.Errorf("over-capacity pickup: err = %v", err)
	}
}

func TestInventory_DropPlacesUnderfoot(t *testing.T) {
	w := parseMap(t, `
		#####
		#...#
		#####`)
	store := domain.NewEntityStore(1)
	player := spawnPlayer(store, w, domain.Position{X: 1, Y: 1})
	player.Inventory = &domain.InventoryComponent{Capacity: 5}
	potion := spawnPotion(store, w, domain.Position{X: 1, Y: 1}, 5)
	if err := PickupItem(w, store, player, potion.ID); err != nil {
		t.Fatal(err)
	}

	w.MoveEntity(player, domain.Position{X: 3, Y: 1})
	if err := DropItem(w, store, player, potion.ID); err != nil {
		t.Fatal(err)
	}

	if potion.Position != (domain.Position{X: 3, Y: 1}) {
		t.Errorf("dropped at %v, want player tile", potion.Position)
	}
	if potion.Item.CarriedBy != nil {
		t.Error("dropped item still marked as carried")
	}

	// Dropping it twice is invalid.
	if err := DropItem(w, store, player, potion.ID); !errors.Is(err, domain.ErrInvalidAction) {
		t.Errorf("double drop: err = %v", err)
	}
}

func TestInventory_RejectedDropLeavesBackpackIntact(t *testing.T) {
	w := parseMap(t, `
		#####
		#...#
		#####`)
	store := domain.NewEntityStore(1)
	player := spawnPlayer(store, w, domain.Position{X: 1, Y: 1})
	player.Inventory = &domain.InventoryComponent{Capacity: 5}
	potion := spawnPotion(store, w, domain.Position{X: 1, Y: 1}, 5)
	if err := PickupItem(w, store, player, potion.ID); err != nil {
		t.Fatal(err)
	}

	// A stale reference that never existed in this registry.
	ghost := domain.NewEntityID(domain.EntityTypeItem, 1, 9999)
	player.Inventory.Items = append(player.Inventory.Items, ghost)

	err := DropItem(w, store, player, ghost)
	if !errors.Is(err, domain.ErrInvalidAction) {
		t.Fatalf("drop of unknown item: err = %v", err)
	}
	// The rejected drop must not touch the backpack, stale entry included.
	if len(player.Inventory.Items) != 2 {
		t.Fatalf("rejected drop mutated the inventory: items = %v", player.Inventory.Items)
	}
	if player.Inventory.Items[0] != potion.ID || player.Inventory.Items[1] != ghost {
		t.Errorf("inventory order changed: %v", player.Inventory.Items)
	}
}
