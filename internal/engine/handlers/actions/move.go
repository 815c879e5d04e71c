package actions

import (
	"fmt"

	"rogue-server/internal/engine/handlers"
	"rogue-server/internal/systems"
	"rogue-server/pkg/api"
)

// HandleMove - шаг игрока на одну клетку. Шаг в существо со статами
// превращается в атаку (урон встает в очередь, применится в конце хода).
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	res, err := systems.TryMove(ctx.World, ctx.Actor, p.Dx, p.Dy)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	if res.Outcome == systems.MoveBumped {
		systems.QueueMelee(ctx.Damage, ctx.Actor, res.Target)
		return handlers.Result{
			Msg:     fmt.Sprintf("%s атакует %s.", ctx.Actor.Name, res.Target.Name),
			MsgType: "COMBAT",
		}, nil
	}

	return handlers.EmptyResult(), nil
}
