package actions

import (
	"fmt"

	"rogue-server/internal/domain"
	"rogue-server/internal/engine/handlers"
	"rogue-server/internal/systems"
	"rogue-server/pkg/api"
)

// HandlePickup поднимает предмет, лежащий на клетке актора.
func HandlePickup(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	itemID, err := parseItemID(p.ItemID)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	if err := systems.PickupItem(ctx.World, ctx.Store, ctx.Actor, itemID); err != nil {
		return handlers.EmptyResult(), err
	}

	item, _ := ctx.Store.Get(itemID)
	return handlers.Result{
		Msg:     fmt.Sprintf("%s подбирает: %s.", ctx.Actor.Name, item.Name),
		MsgType: "INFO",
	}, nil
}

// HandleDrop выкладывает предмет из рюкзака под ноги.
func HandleDrop(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	itemID, err := parseItemID(p.ItemID)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	if err := systems.DropItem(ctx.World, ctx.Store, ctx.Actor, itemID); err != nil {
		return handlers.EmptyResult(), err
	}

	item, _ := ctx.Store.Get(itemID)
	return handlers.Result{
		Msg:     fmt.Sprintf("%s бросает: %s.", ctx.Actor.Name, item.Name),
		MsgType: "INFO",
	}, nil
}

// HandleUseItem применяет предмет из рюкзака.
func HandleUseItem(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	itemID, err := parseItemID(p.ItemID)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	// Имя берем ДО использования: расходник будет помечен на удаление.
	item, itemErr := ctx.Store.Get(itemID)
	name := p.ItemID
	if itemErr == nil {
		name = item.Name
	}

	if err := systems.UseItem(ctx.Store, ctx.Actor, itemID); err != nil {
		return handlers.EmptyResult(), err
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("%s использует: %s.", ctx.Actor.Name, name),
		MsgType: "INFO",
	}, nil
}

func parseItemID(raw string) (domain.EntityID, error) {
	var id domain.EntityID
	if err := id.UnmarshalJSON([]byte(fmt.Sprintf("%q", raw))); err != nil {
		return 0, fmt.Errorf("%w: bad item id %q", domain.ErrInvalidAction, raw)
	}
	return id, nil
}
