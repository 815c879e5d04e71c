package handlers

import (
	"encoding/json"

	"rogue-server/internal/domain"
	"rogue-server/internal/systems"
)

// Context передает хендлеру состояние мира.
// Ссылки, а не копии: хендлер мутирует состояние напрямую.
type Context struct {
	World  *domain.GameWorld
	Store  *domain.EntityStore
	Actor  *domain.Entity // Тот, кто выполняет команду
	Damage *systems.DamageQueue
}

// Result - результат выполнения команды.
// Хендлер не пишет в лог сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string          // Текст лога
	MsgType string          // Тип лога (INFO, COMBAT, ERROR)
	Event   json.RawMessage // Сырые данные события для обработки движком
}

// HandlerFunc - контракт для любой команды (MOVE, WAIT, etc).
// Ошибка, оборачивающая domain.ErrInvalidAction, означает: действие
// отвергнуто, мир не изменился, ход не потрачен.
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - пустой успешный ответ
func EmptyResult() Result {
	return Result{}
}
