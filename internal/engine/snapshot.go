package engine

import (
	"fmt"
	"time"

	"rogue-server/internal/infrastructure/storage"
	"rogue-server/pkg/logger"
)

// Snapshot делает снимок текущей партии. Допустим только на границе
// хода: посреди цикла очередь урона и реестр в промежуточном состоянии.
func (s *GameService) Snapshot() (*storage.Snapshot, error) {
	if s.sched.State() != StateAwaitingInput {
		return nil, fmt.Errorf("cannot snapshot in state %s", s.sched.State())
	}
	return &storage.Snapshot{
		Seed:      s.cfg.Seed,
		Timestamp: time.Now().Unix(),
		Depth:     s.sched.World().Depth,
		Turn:      s.sched.Turn(),
		PlayerID:  s.player.ID,
		World:     s.sched.World(),
		Entities:  s.sched.Store().All(),
	}, nil
}

// GameServiceFromSnapshot восстанавливает партию из снимка на диске.
// Конфиг берет зерно из снимка: продолжение партии обязано жить в том
// же потоке случайности.
func GameServiceFromSnapshot(cfg Config, snap *storage.Snapshot, notifier Notifier) (*GameService, error) {
	world, store, player, err := snap.Restore()
	if err != nil {
		return nil, fmt.Errorf("restore snapshot: %w", err)
	}

	cfg.Seed = snap.Seed
	if player.Vision != nil {
		cfg.VisionRadius = player.Vision.Radius
	}

	sched := RestoreScheduler(world, store, player, snap.Turn)
	logger.Log.WithFields(map[string]interface{}{
		"seed":  snap.Seed,
		"depth": snap.Depth,
		"turn":  snap.Turn,
	}).Info("Game restored from snapshot")

	return RestoreGameService(cfg, sched, player, notifier), nil
}
