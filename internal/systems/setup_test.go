package systems

import (
	"os"
	"strings"
	"testing"

	"rogue-server/internal/domain"
	"rogue-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

// parseMap builds a world from an ASCII sketch: '#' wall, '.' floor,
// '>' stairs. Rows must be equal length.
func parseMap(t *testing.T, sketch string) *domain.GameWorld {
	t.Helper()
	rows := strings.Split(strings.TrimSpace(sketch), "\n")
	height := len(rows)
	width := len(strings.TrimSpace(rows[0]))

	w := domain.NewGameWorld(width, height, 1)
	for y, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != width {
			t.Fatalf("row %d has length %d, want %d", y, len(row), width)
		}
		for x, ch := range row {
			switch ch {
			case '.':
				w.SetTerrain(x, y, domain.TerrainFloor)
			case '>':
				w.SetTerrain(x, y, domain.TerrainStairsDown)
			}
		}
	}
	return w
}
