package engine

import (
	"encoding/json"
	"errors"
	"fmt"

	"rogue-server/internal/domain"
	"rogue-server/internal/engine/events"
	"rogue-server/internal/engine/handlers"
	"rogue-server/internal/engine/handlers/actions"
	"rogue-server/internal/systems"
	"rogue-server/pkg/logger"
)

// TurnState - фаза цикла хода
type TurnState int

const (
	// StateAwaitingInput - движок стоит и ждет действия игрока.
	StateAwaitingInput TurnState = iota
	// StateApplyingAction - действие игрока применяется к миру.
	StateApplyingAction
	// StateRunningAI - существа под управлением ИИ делают свои ходы.
	StateRunningAI
	// StateResolvingEffects - накопленный урон применяется, погибшие
	// удаляются, поле зрения пересчитывается.
	StateResolvingEffects
	// StatePlayerDead - терминальное состояние: игрок погиб.
	StatePlayerDead
	// StateLevelComplete - игрок спустился по лестнице; сервис должен
	// построить следующий уровень.
	StateLevelComplete
)

var stateToString = map[TurnState]string{
	StateAwaitingInput:    "AWAITING_INPUT",
	StateApplyingAction:   "APPLYING_ACTION",
	StateRunningAI:        "RUNNING_AI",
	StateResolvingEffects: "RESOLVING_EFFECTS",
	StatePlayerDead:       "PLAYER_DEAD",
	StateLevelComplete:    "LEVEL_COMPLETE",
}

func (s TurnState) String() string {
	if v, ok := stateToString[s]; ok {
		return v
	}
	return "UNKNOWN"
}

// TurnResult - итог одного завершенного хода.
type TurnResult struct {
	Turn     int
	State    TurnState
	Messages []handlers.Result
	// Died - кто погиб в этом ходу (в порядке получения урона).
	Died []domain.EntityID
	// Transition - заполнено, когда ход закончился спуском.
	Transition *events.LevelTransition
}

// Scheduler гоняет цикл хода одного уровня:
//
//	AwaitingInput -> ApplyingAction -> RunningAI -> ResolvingEffects -> AwaitingInput
//
// с выходами в PlayerDead и LevelComplete. Невалидное действие игрока
// не запускает цикл вовсе: состояние и счетчик ходов не меняются.
type Scheduler struct {
	world  *domain.GameWorld
	store  *domain.EntityStore
	player *domain.Entity
	damage *systems.DamageQueue

	state    TurnState
	turn     int
	handlers map[domain.ActionType]handlers.HandlerFunc
}

// NewScheduler собирает планировщик для уровня и сразу считает
// стартовое поле зрения игрока.
func NewScheduler(world *domain.GameWorld, store *domain.EntityStore, player *domain.Entity) *Scheduler {
	s := &Scheduler{
		world:  world,
		store:  store,
		player: player,
		damage: systems.NewDamageQueue(),
		state:  StateAwaitingInput,
	}
	s.handlers = map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionMove:    handlers.WithPayload(actions.HandleMove),
		domain.ActionWait:    handlers.WithEmptyPayload(actions.HandleWait),
		domain.ActionPickup:  handlers.WithPayload(actions.HandlePickup),
		domain.ActionDrop:    handlers.WithPayload(actions.HandleDrop),
		domain.ActionUseItem: handlers.WithPayload(actions.HandleUseItem),
		domain.ActionDescend: handlers.WithEmptyPayload(actions.HandleDescend),
	}
	systems.ApplyVisibility(world, player)
	return s
}

// RestoreScheduler поднимает планировщик из снимка с сохраненным
// счетчиком ходов.
func RestoreScheduler(world *domain.GameWorld, store *domain.EntityStore, player *domain.Entity, turn int) *Scheduler {
	s := NewScheduler(world, store, player)
	s.turn = turn
	return s
}

// State - текущая фаза цикла.
func (s *Scheduler) State() TurnState { return s.state }

// Turn - номер последнего завершенного хода.
func (s *Scheduler) Turn() int { return s.turn }

// World возвращает карту уровня.
func (s *Scheduler) World() *domain.GameWorld { return s.world }

// Store возвращает реестр сущностей уровня.
func (s *Scheduler) Store() *domain.EntityStore { return s.store }

// Player возвращает сущность игрока.
func (s *Scheduler) Player() *domain.Entity { return s.player }

// RunTurn прогоняет один полный ход, начиная с действия игрока.
//
// Если действие невалидно (errors.Is(err, domain.ErrInvalidAction)),
// мир гарантированно не изменился, ход не потрачен, планировщик
// остался в StateAwaitingInput.
func (s *Scheduler) RunTurn(action domain.ActionType, payload json.RawMessage) (*TurnResult, error) {
	if s.state != StateAwaitingInput {
		return nil, fmt.Errorf("%w: scheduler is in state %s", domain.ErrInvalidAction, s.state)
	}

	handler, ok := s.handlers[action]
	if !ok {
		return nil, fmt.Errorf("%w: no handler for action %s", domain.ErrInvalidAction, action)
	}

	// --- Фаза 1: действие игрока ---
	s.state = StateApplyingAction
	ctx := handlers.Context{
		World:  s.world,
		Store:  s.store,
		Actor:  s.player,
		Damage: s.damage,
	}
	res, err := handler(ctx, payload)
	if err != nil {
		s.state = StateAwaitingInput
		if errors.Is(err, domain.ErrInvalidAction) {
			return nil, err
		}
		return nil, fmt.Errorf("action %s failed: %w", action, err)
	}

	result := &TurnResult{Turn: s.turn + 1}
	if res.Msg != "" {
		result.Messages = append(result.Messages, res)
	}

	// Спуск по лестнице завершает ход немедленно: монстры не успевают
	// ударить в спину уходящему.
	if res.Event != nil {
		if lt, ok := events.Parse(res.Event); ok {
			s.turn++
			s.state = StateLevelComplete
			result.State = s.state
			result.Transition = &lt
			return result, nil
		}
	}

	// --- Фаза 2: ходы ИИ, в порядке создания сущностей ---
	s.state = StateRunningAI
	s.store.EachWith(domain.MaskBehavior, func(e *domain.Entity) bool {
		if e.ID == s.player.ID {
			return true
		}
		systems.RunNPC(s.world, e, s.player, s.damage)
		return true
	})

	// --- Фаза 3: разрешение эффектов ---
	s.state = StateResolvingEffects
	result.Died = s.damage.Resolve(s.store)
	s.store.Flush(s.world)

	systems.ApplyVisibility(s.world, s.player)
	s.turn++
	result.Turn = s.turn

	if s.player.Stats != nil && s.player.Stats.IsDead() {
		s.state = StatePlayerDead
		logger.Log.WithField("turn", s.turn).Info("Player died")
	} else {
		s.state = StateAwaitingInput
	}
	result.State = s.state
	return result, nil
}
