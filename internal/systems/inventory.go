package systems

import (
	"fmt"

	"rogue-server/internal/domain"
	"rogue-server/pkg/logger"
)

// PickupItem поднимает предмет с клетки актора в его рюкзак.
// Предмет остается сущностью в реестре, но снимается с карты.
func PickupItem(world *domain.GameWorld, store *domain.EntityStore, actor *domain.Entity, itemID domain.EntityID) error {
	if actor.Inventory == nil {
		return fmt.Errorf("%w: %s has no inventory", domain.ErrInvalidAction, actor.Name)
	}
	if actor.Inventory.IsFull() {
		return fmt.Errorf("%w: inventory is full", domain.ErrInvalidAction)
	}

	item, err := store.Get(itemID)
	if err != nil {
		return fmt.Errorf("%w: item %s", domain.ErrInvalidAction, itemID)
	}
	if item.Item == nil || item.Item.CarriedBy != nil {
		return fmt.Errorf("%w: %s cannot be picked up", domain.ErrInvalidAction, item.Name)
	}
	if item.Position != actor.Position {
		return fmt.Errorf("%w: %s is not underfoot", domain.ErrInvalidAction, item.Name)
	}

	world.RemoveEntity(item)
	owner := actor.ID
	item.Item.CarriedBy = &owner
	actor.Inventory.Items = append(actor.Inventory.Items, item.ID)

	logger.Log.WithFields(map[string]interface{}{
		"actor": actor.Name,
		"item":  item.Name,
	}).Debug("Item picked up")
	return nil
}

// DropItem выкладывает предмет из рюкзака на клетку актора.
// Сначала все проверки, мутации в самом конце: отказ не должен
// оставить рюкзак в полуразобранном состоянии.
func DropItem(world *domain.GameWorld, store *domain.EntityStore, actor *domain.Entity, itemID domain.EntityID) error {
	if actor.Inventory == nil {
		return fmt.Errorf("%w: %s has no inventory", domain.ErrInvalidAction, actor.Name)
	}
	item, err := store.Get(itemID)
	if err != nil {
		return fmt.Errorf("%w: item %s", domain.ErrInvalidAction, itemID)
	}
	if item.Item == nil || item.Item.CarriedBy == nil || *item.Item.CarriedBy != actor.ID {
		return fmt.Errorf("%w: %s is not carried by %s", domain.ErrInvalidAction, item.Name, actor.Name)
	}
	if !actor.Inventory.Remove(itemID) {
		return fmt.Errorf("%w: item %s is not in inventory", domain.ErrInvalidAction, itemID)
	}

	item.Item.CarriedBy = nil
	item.Position = actor.Position
	world.PlaceEntity(item)

	logger.Log.WithFields(map[string]interface{}{
		"actor": actor.Name,
		"item":  item.Name,
	}).Debug("Item dropped")
	return nil
}

// UseItem применяет эффект предмета из рюкзака. Расходники после
// использования помечаются на удаление (исчезнут в конце хода).
func UseItem(store *domain.EntityStore, actor *domain.Entity, itemID domain.EntityID) error {
	if actor.Inventory == nil {
		return fmt.Errorf("%w: %s has no inventory", domain.ErrInvalidAction, actor.Name)
	}

	item, err := store.Get(itemID)
	if err != nil {
		return fmt.Errorf("%w: item %s", domain.ErrInvalidAction, itemID)
	}
	if item.Item == nil || item.Item.CarriedBy == nil || *item.Item.CarriedBy != actor.ID {
		return fmt.Errorf("%w: %s is not carried by %s", domain.ErrInvalidAction, item.Name, actor.Name)
	}

	switch item.Item.Effect {
	case domain.EffectHeal:
		if actor.Stats == nil {
			return fmt.Errorf("%w: %s cannot be healed", domain.ErrInvalidAction, actor.Name)
		}
		if actor.Stats.HP >= actor.Stats.MaxHP {
			return fmt.Errorf("%w: already at full health", domain.ErrInvalidAction)
		}
		actor.Stats.Heal(item.Item.Power)
	default:
		return fmt.Errorf("%w: %s has no usable effect", domain.ErrInvalidAction, item.Name)
	}

	if item.Item.Consumable {
		actor.Inventory.Remove(item.ID)
		store.Destroy(item.ID)
	}

	logger.Log.WithFields(map[string]interface{}{
		"actor": actor.Name,
		"item":  item.Name,
	}).Debug("Item used")
	return nil
}
