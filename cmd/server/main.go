package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rogue-server/internal/engine"
	"rogue-server/internal/infrastructure/storage"
	"rogue-server/internal/network"
	"rogue-server/internal/server"
	"rogue-server/internal/telemetry"
	"rogue-server/internal/version"
	"rogue-server/pkg/logger"
)

func init() {
	// .env опционален: в проде переменные приходят из окружения.
	_ = godotenv.Load()
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed uint64
	var loadPath string
	var saveDir string
	flag.Uint64Var(&seed, "seed", 0, "Master world seed (0 for random)")
	flag.StringVar(&loadPath, "load", "", "Path to .rgsv snapshot to resume")
	flag.StringVar(&saveDir, "saves", "saves", "Directory for game snapshots")
	flag.Parse()

	logger.Log.Info("Starting Rogue Server...")
	logger.Log.Info(version.String())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Телеметрия включается только при настроенном экспортере.
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Log.Warn("Telemetry setup failed: ", err)
		} else {
			defer func() {
				shutdownCtx, c := context.WithTimeout(context.Background(), 5*time.Second)
				defer c()
				if err := shutdown(shutdownCtx); err != nil {
					logger.Log.Warn("Telemetry shutdown: ", err)
				}
			}()
		}
	}

	cfg := engine.ConfigFromEnv()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit master seed: %d", seed)
	} else {
		logger.Log.Infof("Using master seed: %d", cfg.Seed)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра
	hub := network.NewBroadcaster()
	snapshots := storage.NewSnapshotService(saveDir)

	var gameService *engine.GameService
	if loadPath != "" {
		snap, err := snapshots.Load(loadPath)
		if err != nil {
			logger.Log.Fatal("Failed to load snapshot: ", err)
		}
		gameService, err = engine.GameServiceFromSnapshot(cfg, snap, hub)
		if err != nil {
			logger.Log.Fatal("Failed to restore game: ", err)
		}
	} else {
		var err error
		gameService, err = engine.NewGameService(ctx, cfg, hub)
		if err != nil {
			logger.Log.Fatal("Failed to create game: ", err)
		}
	}

	go gameService.Run(ctx)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, hub, port)
	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	cancel()

	// Снимок партии на выходе: игру можно продолжить через -load.
	if snap, err := gameService.Snapshot(); err != nil {
		logger.Log.Warn("Skipping shutdown snapshot: ", err)
	} else if path, err := snapshots.Save(snap); err != nil {
		logger.Log.Error("Failed to save snapshot: ", err)
	} else {
		logger.Log.Info("Game saved to ", path)
	}

	logger.Log.Info("Done.")
}
