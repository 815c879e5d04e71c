package systems

import (
	"fmt"

	"rogue-server/internal/domain"
)

// MoveOutcome - чем закончилась попытка шага
type MoveOutcome int

const (
	// MoveStepped - актор перешел на соседнюю клетку.
	MoveStepped MoveOutcome = iota
	// MoveBumped - клетка занята существом; шаг превращается в атаку.
	MoveBumped
)

// MoveResult описывает примененный шаг.
type MoveResult struct {
	Outcome MoveOutcome
	From    domain.Position
	To      domain.Position
	// Target - существо, в которое уперся актор (при MoveBumped).
	Target *domain.Entity
}

// TryMove пытается сдвинуть актора на (dx, dy). Шаг строго на одну
// клетку в одном из 8 направлений.
//
// Возвращает ErrInvalidAction (через errors.Is) без каких-либо
// изменений мира, если шаг невозможен: неверная дельта, стена,
// граница карты, клетка занята существом без статов.
func TryMove(world *domain.GameWorld, actor *domain.Entity, dx, dy int) (*MoveResult, error) {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return nil, fmt.Errorf("%w: move delta must be a unit step, got (%d,%d)",
			domain.ErrInvalidAction, dx, dy)
	}

	from := actor.Position
	to := from.Shift(dx, dy)

	if !world.IsWalkable(to.X, to.Y) {
		return nil, fmt.Errorf("%w: tile (%d,%d) is not walkable",
			domain.ErrInvalidAction, to.X, to.Y)
	}

	if blocker := world.BlockerAt(to); blocker != nil {
		if blocker.Stats == nil {
			return nil, fmt.Errorf("%w: tile (%d,%d) is occupied",
				domain.ErrInvalidAction, to.X, to.Y)
		}
		// Шаг в существо - это атака, позиция не меняется.
		return &MoveResult{Outcome: MoveBumped, From: from, To: to, Target: blocker}, nil
	}

	world.MoveEntity(actor, to)
	MarkVisionDirty(actor)
	return &MoveResult{Outcome: MoveStepped, From: from, To: to}, nil
}
