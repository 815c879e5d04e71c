package actions

import (
	"rogue-server/internal/engine/handlers"
)

// HandleWait - игрок пропускает ход. Всегда валидное действие.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
