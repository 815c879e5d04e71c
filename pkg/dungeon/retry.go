package dungeon

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v5"

	"rogue-server/internal/domain"
	"rogue-server/pkg/logger"
)

// maxGenerationAttempts - сколько соседних зерен перебираем, прежде чем
// сдаться. Несвязные карты редки, но геометрически возможны.
const maxGenerationAttempts = 8

// GeneratedLevel - результат успешной генерации уровня.
type GeneratedLevel struct {
	World       *domain.GameWorld
	PlayerStart domain.Position
	Rooms       []Rect
	// Seed - зерно, реально давшее карту (может отличаться от
	// запрошенного, если первые попытки дали несвязный уровень).
	Seed uint64
}

// GenerateWithRetry вызывает Generate, детерминированно сдвигая зерно
// при ErrUnreachable. ErrInvalidDimensions не лечится перебором и
// возвращается сразу.
func GenerateWithRetry(ctx context.Context, seed uint64, width, height, depth int) (*GeneratedLevel, error) {
	attempt := uint64(0)

	op := func() (*GeneratedLevel, error) {
		trySeed := seed + attempt
		attempt++

		world, start, rooms, err := Generate(trySeed, width, height, depth)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidDimensions) {
				return nil, backoff.Permanent(err)
			}
			logger.Log.WithField("seed", trySeed).Warn("Level generation retry: ", err)
			return nil, err
		}
		return &GeneratedLevel{World: world, PlayerStart: start, Rooms: rooms, Seed: trySeed}, nil
	}

	return backoff.Retry(ctx, op,
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(maxGenerationAttempts),
	)
}
