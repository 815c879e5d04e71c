package engine

import (
	"os"
	"strconv"
	"time"
)

// Параметры по умолчанию. Радиус зрения игрока - вось клеток.
const (
	DefaultMapWidth     = 40
	DefaultMapHeight    = 20
	DefaultVisionRadius = 8
	DefaultInventoryCap = 10
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. Зерна всех уровней детерминированно
	// выводятся из него (см. dungeon.DeriveSeed).
	Seed uint64

	MapWidth  int
	MapHeight int

	// VisionRadius - радиус поля зрения игрока.
	VisionRadius int
}

// NewConfig создает конфиг по умолчанию (случайное зерно).
func NewConfig() Config {
	return Config{
		Seed:         uint64(time.Now().UnixNano()),
		MapWidth:     DefaultMapWidth,
		MapHeight:    DefaultMapHeight,
		VisionRadius: DefaultVisionRadius,
	}
}

// ConfigFromEnv читает переопределения из окружения поверх дефолтов.
// Понимает GAME_SEED, MAP_WIDTH, MAP_HEIGHT, VISION_RADIUS.
func ConfigFromEnv() Config {
	cfg := NewConfig()
	if v, err := strconv.ParseUint(os.Getenv("GAME_SEED"), 10, 64); err == nil {
		cfg.Seed = v
	}
	if v, err := strconv.Atoi(os.Getenv("MAP_WIDTH")); err == nil && v > 0 {
		cfg.MapWidth = v
	}
	if v, err := strconv.Atoi(os.Getenv("MAP_HEIGHT")); err == nil && v > 0 {
		cfg.MapHeight = v
	}
	if v, err := strconv.Atoi(os.Getenv("VISION_RADIUS")); err == nil && v > 0 {
		cfg.VisionRadius = v
	}
	return cfg
}
