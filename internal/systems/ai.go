package systems

import (
	"rogue-server/internal/domain"
	"rogue-server/pkg/logger"
)

// RunNPC выполняет ход одного существа под управлением ИИ.
// Атаки не применяются сразу, а копятся в очереди урона.
//
// Модель поведения враждебных существ:
//  1. Игрок в поле зрения и вплотную - атака.
//  2. Игрок в поле зрения - шаг по кратчайшему пути к нему,
//     направление шага запоминается как курс преследования.
//  3. Игрок не виден, но курс есть - дрейф по последнему курсу,
//     пока не упремся в препятствие.
//  4. Иначе существо стоит.
func RunNPC(world *domain.GameWorld, npc, player *domain.Entity, damage *DamageQueue) {
	if npc.Behavior == nil || npc.Behavior.Kind != domain.BehaviorHostile {
		return
	}
	if player == nil || player.Stats == nil || player.Stats.IsDead() {
		return
	}

	seesPlayer := false
	if npc.Vision != nil {
		visible := RecomputeVision(world, npc)
		seesPlayer = visible[player.Position]
	}

	if seesPlayer {
		if npc.Position.IsAdjacent(player.Position) {
			QueueMelee(damage, npc, player)
			return
		}
		step, ok := StepToward(world, npc.Position, player.Position)
		if !ok {
			// Видит, но пройти не может (коридор забит) - ждет.
			npc.Behavior.LastHeading = nil
			return
		}
		dx, dy := npc.Position.DirectionTo(step)
		npc.Behavior.LastHeading = &domain.Position{X: dx, Y: dy}
		if world.CanEnter(step) {
			world.MoveEntity(npc, step)
			MarkVisionDirty(npc)
		}
		return
	}

	// Игрок пропал из виду: продолжаем идти прежним курсом.
	if h := npc.Behavior.LastHeading; h != nil {
		next := npc.Position.Shift(h.X, h.Y)
		if world.CanEnter(next) {
			world.MoveEntity(npc, next)
			MarkVisionDirty(npc)
			return
		}
		logger.Log.WithField("npc", npc.Name).Trace("Pursuit heading lost")
		npc.Behavior.LastHeading = nil
	}
}
