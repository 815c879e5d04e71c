package engine

import (
	"encoding/json"

	"rogue-server/internal/domain"
	"rogue-server/pkg/api"
	"rogue-server/pkg/logger"
)

// BuildState собирает снимок мира глазами игрока: только исследованные
// тайлы, только видимые сущности. Накопленные логи уходят клиенту и
// очищаются.
func (s *GameService) BuildState(respType string) *api.ServerResponse {
	world := s.sched.World()
	resp := &api.ServerResponse{
		Type:       respType,
		Turn:       s.sched.Turn(),
		Depth:      world.Depth,
		State:      s.sched.State().String(),
		MyEntityID: s.player.ID.String(),
		Grid:       &api.GridMeta{Width: world.Width, Height: world.Height},
	}

	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			tile := world.TileAt(x, y)
			if !tile.Revealed {
				continue
			}
			resp.Map = append(resp.Map, api.TileView{
				X:          x,
				Y:          y,
				Terrain:    tile.Terrain.String(),
				IsVisible:  tile.Visible,
				IsExplored: tile.Revealed,
			})
		}
	}

	for _, e := range s.sched.Store().All() {
		// Предметы в рюкзаках на карте не рисуются.
		if e.Item != nil && e.Item.CarriedBy != nil {
			continue
		}
		isSelf := e.ID == s.player.ID
		if !isSelf && !s.playerSees(e.Position) {
			continue
		}
		resp.Entities = append(resp.Entities, s.entityView(e, isSelf))
	}

	resp.Logs = s.logs
	s.logs = nil
	return resp
}

func (s *GameService) playerSees(pos domain.Position) bool {
	return s.player.Vision != nil && s.player.Vision.CanSee(pos)
}

func (s *GameService) entityView(e *domain.Entity, includePrivate bool) api.EntityView {
	view := api.EntityView{
		ID:   e.ID.String(),
		Type: entityTypeName(e),
		Name: e.Name,
	}
	view.Pos.X = e.Position.X
	view.Pos.Y = e.Position.Y
	if e.Render != nil {
		view.Render.Symbol = string(e.Render.Glyph)
		view.Render.Color = e.Render.Color
	}
	if e.Stats != nil {
		view.Stats = &api.StatsView{
			HP:     e.Stats.HP,
			MaxHP:  e.Stats.MaxHP,
			IsDead: e.Stats.IsDead(),
		}
		if includePrivate {
			view.Stats.Strength = e.Stats.Strength
			view.Stats.Defense = e.Stats.Defense
		}
	}
	if includePrivate && e.Inventory != nil {
		inv := &api.InventoryView{Capacity: e.Inventory.Capacity}
		for _, itemID := range e.Inventory.Items {
			item, err := s.sched.Store().Get(itemID)
			if err != nil {
				continue
			}
			iv := api.ItemView{ID: item.ID.String(), Name: item.Name}
			if item.Render != nil {
				iv.Symbol = string(item.Render.Glyph)
				iv.Color = item.Render.Color
			}
			inv.Items = append(inv.Items, iv)
		}
		view.Inventory = inv
	}
	return view
}

func entityTypeName(e *domain.Entity) string {
	switch e.ID.Type() {
	case domain.EntityTypePlayer:
		return "PLAYER"
	case domain.EntityTypeItem:
		return "ITEM"
	default:
		return "NPC"
	}
}

func (s *GameService) marshalState(respType string) []byte {
	data, err := json.Marshal(s.BuildState(respType))
	if err != nil {
		logger.Log.Error("Failed to marshal state: ", err)
		return []byte(`{"type":"ERROR"}`)
	}
	return data
}
