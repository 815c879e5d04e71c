package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"rogue-server/internal/domain"
	"rogue-server/internal/systems"
	"rogue-server/internal/telemetry"
	"rogue-server/pkg/api"
	"rogue-server/pkg/dungeon"
	"rogue-server/pkg/logger"
)

// Notifier доставляет готовые снимки состояния клиентам.
// Реализуется network.Broadcaster; интерфейс здесь, чтобы движок
// не зависел от транспорта.
type Notifier interface {
	Broadcast(data []byte)
	SendTo(sessionID string, data []byte)
}

// Отдельная соль для потока заселения: число попыток генерации
// геометрии не должно сдвигать расселение монстров.
const populateSeedSalt = 0x9E3779B97F4A7C15

// GameService владеет жизненным циклом партии: строит уровни, гоняет
// планировщик ходов, переносит игрока между уровнями и рассылает
// снимки состояния.
//
// Вся мутация мира происходит в одной горутине Run: канал команд -
// единственная точка входа, ожидание на нем и есть состояние
// "ждем ввода игрока".
type GameService struct {
	cfg      Config
	sched    *Scheduler
	player   *domain.Entity
	notifier Notifier

	// CommandChan - входящие команды от транспортного слоя.
	CommandChan chan domain.InternalCommand

	tracer trace.Tracer
	logs   []api.LogEntry
}

// NewGameService строит сервис и первый уровень подземелья.
func NewGameService(ctx context.Context, cfg Config, notifier Notifier) (*GameService, error) {
	s := &GameService{
		cfg:         cfg,
		notifier:    notifier,
		CommandChan: make(chan domain.InternalCommand, 16),
		tracer:      engineTracer(),
	}
	if err := s.buildLevel(ctx, 1); err != nil {
		return nil, fmt.Errorf("build first level: %w", err)
	}
	logger.Log.WithFields(map[string]interface{}{
		"seed":   cfg.Seed,
		"width":  cfg.MapWidth,
		"height": cfg.MapHeight,
	}).Info("Game service ready")
	return s, nil
}

// RestoreGameService поднимает сервис вокруг уже восстановленного
// уровня (из снимка на диске).
func RestoreGameService(cfg Config, sched *Scheduler, player *domain.Entity, notifier Notifier) *GameService {
	return &GameService{
		cfg:         cfg,
		sched:       sched,
		player:      player,
		notifier:    notifier,
		CommandChan: make(chan domain.InternalCommand, 16),
		tracer:      engineTracer(),
	}
}

// engineTracer выбирает трассировщик: реальный при настроенном
// экспортере, иначе пустышка.
func engineTracer() trace.Tracer {
	if telemetry.Enabled() {
		return telemetry.Tracer("engine")
	}
	return telemetry.NoopTracer()
}

// buildLevel генерирует, заселяет уровень глубины depth и ставит на
// него игрока. Существующий игрок (вместе с рюкзаком) переезжает,
// новый создается на пустом месте.
func (s *GameService) buildLevel(ctx context.Context, depth int) error {
	ctx, span := s.tracer.Start(ctx, "engine.buildLevel",
		trace.WithAttributes(attribute.Int("level.depth", depth)))
	defer span.End()

	levelSeed := dungeon.DeriveSeed(s.cfg.Seed, depth)
	gen, err := dungeon.GenerateWithRetry(ctx, levelSeed, s.cfg.MapWidth, s.cfg.MapHeight, depth)
	if err != nil {
		return err
	}

	store := domain.NewEntityStore(depth)
	populateRng := rand.New(rand.NewSource(int64(gen.Seed ^ populateSeedSalt)))
	world, _ := dungeon.NewLevel(gen, store, populateRng).
		Populate(dungeon.NewSpawnTable(depth)).
		Build()

	if s.player == nil {
		s.player = s.createPlayer(store, gen.PlayerStart)
	} else {
		store.Adopt(s.player)
		s.player.Position = gen.PlayerStart
		// Рюкзак путешествует вместе с владельцем.
		if s.player.Inventory != nil {
			for _, itemID := range s.player.Inventory.Items {
				if item, err := s.itemFromPrevLevel(itemID); err == nil {
					store.Adopt(item)
				}
			}
		}
		// Передышка на лестнице: здоровье поднимается хотя бы до половины.
		if st := s.player.Stats; st != nil && st.HP < st.MaxHP/2 {
			st.HP = st.MaxHP / 2
		}
	}
	world.PlaceEntity(s.player)
	// Карта новая: все кэши FOV уровня недействительны.
	systems.InvalidateAllVision(store)

	s.sched = NewScheduler(world, store, s.player)
	logger.Log.WithFields(map[string]interface{}{
		"depth": depth,
		"seed":  gen.Seed,
	}).Info("Level built")
	return nil
}

// itemFromPrevLevel достает предмет рюкзака из реестра предыдущего
// уровня перед его утилизацией.
func (s *GameService) itemFromPrevLevel(id domain.EntityID) (*domain.Entity, error) {
	if s.sched == nil {
		return nil, domain.ErrUnknownEntity
	}
	return s.sched.Store().Get(id)
}

func (s *GameService) createPlayer(store *domain.EntityStore, pos domain.Position) *domain.Entity {
	p := store.Create(domain.EntityTypePlayer, "Герой", pos)
	p.Render = &domain.RenderComponent{Glyph: '@', Color: "#FBBF24", Order: 2}
	p.Stats = &domain.StatsComponent{MaxHP: 30, HP: 30, Strength: 5, Defense: 1}
	p.Behavior = &domain.BehaviorComponent{Kind: domain.BehaviorPlayer}
	p.Vision = domain.NewVisionComponent(s.cfg.VisionRadius)
	p.Inventory = &domain.InventoryComponent{Capacity: DefaultInventoryCap}
	p.Blocker = true
	return p
}

// Scheduler отдает текущий планировщик (для снимков состояния).
func (s *GameService) Scheduler() *Scheduler { return s.sched }

// Player отдает сущность игрока.
func (s *GameService) Player() *domain.Entity { return s.player }

// Config отдает конфигурацию партии.
func (s *GameService) Config() Config { return s.cfg }

// Run крутит игровой цикл до отмены контекста. Блокирующее чтение из
// CommandChan - это и есть состояние AwaitingInput.
func (s *GameService) Run(ctx context.Context) {
	logger.Log.Info("Game loop started")
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("Game loop stopped: ", ctx.Err())
			return
		case cmd := <-s.CommandChan:
			s.handleCommand(ctx, cmd)
		}
	}
}

func (s *GameService) handleCommand(ctx context.Context, cmd domain.InternalCommand) {
	ctx, span := s.tracer.Start(ctx, "engine.handleCommand",
		trace.WithAttributes(attribute.String("action", string(cmd.Action))))
	defer span.End()

	switch cmd.Action {
	case domain.ActionInit:
		// Новому клиенту - полный снимок без траты хода.
		s.notifier.SendTo(cmd.SenderID, s.marshalState("UPDATE"))
		return
	case domain.ActionQuit:
		logger.Log.WithField("session", cmd.SenderID).Info("Client quit")
		return
	}

	result, err := s.sched.RunTurn(cmd.Action, cmd.Payload)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAction) {
			// Мир не изменился; шлем отказ только автору команды.
			s.pushLog(err.Error(), "ERROR")
			s.notifier.SendTo(cmd.SenderID, s.marshalState("UPDATE"))
			return
		}
		logger.Log.WithField("action", cmd.Action).Error("Turn failed: ", err)
		return
	}

	for _, msg := range result.Messages {
		s.pushLog(msg.Msg, msg.MsgType)
	}
	for _, id := range result.Died {
		if id != s.player.ID {
			s.pushLog(fmt.Sprintf("Существо %s погибает.", id), "COMBAT")
		}
	}

	respType := "UPDATE"
	switch result.State {
	case StatePlayerDead:
		respType = "GAME_OVER"
		s.pushLog("Вы погибли. Подземелье забирает еще одну душу.", "COMBAT")
	case StateLevelComplete:
		if result.Transition != nil {
			if err := s.buildLevel(ctx, result.Transition.TargetDepth); err != nil {
				logger.Log.Error("Level transition failed: ", err)
				s.pushLog("Проход обрушился за вашей спиной.", "ERROR")
			} else {
				respType = "LEVEL_COMPLETE"
			}
		}
	}

	s.notifier.Broadcast(s.marshalState(respType))
}

func (s *GameService) pushLog(text, msgType string) {
	s.logs = append(s.logs, api.LogEntry{
		ID:        uuid.NewString(),
		Text:      text,
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
	})
}
