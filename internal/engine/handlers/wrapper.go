package handlers

import (
	"encoding/json"
	"fmt"

	"rogue-server/internal/domain"
	"rogue-server/pkg/api"
)

// TypedHandlerFunc - "чистый" хендлер, работающий с готовой структурой T
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер, которому не нужны данные (WAIT, DESCEND)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload превращает "чистый" хендлер в стандартный HandlerFunc,
// беря на себя Unmarshal и Validate. Оба вида отказа - это
// ErrInvalidAction: состояние мира гарантированно не тронуто.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		var payload T

		// 1. Распаковка JSON
		if err := json.Unmarshal(raw, &payload); err != nil {
			return Result{}, fmt.Errorf("%w: invalid payload format: %v", domain.ErrInvalidAction, err)
		}

		// 2. Автоматическая валидация, если T реализует Validator
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("%w: %v", domain.ErrInvalidAction, err)
			}
		}

		// 3. Вызов чистой логики
		return handler(ctx, payload)
	}
}

// WithEmptyPayload - обертка для команд без данных
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}
