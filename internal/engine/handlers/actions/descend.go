package actions

import (
	"fmt"

	"rogue-server/internal/domain"
	"rogue-server/internal/engine/events"
	"rogue-server/internal/engine/handlers"
)

// HandleDescend - спуск по лестнице. Валиден, только когда актор стоит
// на клетке лестницы; иначе ход не тратится.
func HandleDescend(ctx handlers.Context) (handlers.Result, error) {
	tile := ctx.World.TileAt(ctx.Actor.Position.X, ctx.Actor.Position.Y)
	if tile == nil || tile.Terrain != domain.TerrainStairsDown {
		return handlers.EmptyResult(), fmt.Errorf(
			"%w: no stairs at (%d,%d)",
			domain.ErrInvalidAction, ctx.Actor.Position.X, ctx.Actor.Position.Y)
	}

	return handlers.Result{
		Msg:     "Ступени уводят вас глубже в подземелье.",
		MsgType: "INFO",
		Event:   events.NewLevelTransition(ctx.World.Depth + 1),
	}, nil
}
