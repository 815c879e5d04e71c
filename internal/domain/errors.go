package domain

import "errors"

// Сентинельные ошибки домена. Проверяются через errors.Is по всему движку.
var (
	// ErrInvalidDimensions - запрошена карта непригодного размера.
	ErrInvalidDimensions = errors.New("invalid map dimensions")
	// ErrUnreachable - генератор не смог гарантировать связность уровня.
	ErrUnreachable = errors.New("generated level is not fully connected")
	// ErrInvalidAction - действие отвергнуто до применения; состояние мира
	// не изменилось и ход не потрачен.
	ErrInvalidAction = errors.New("invalid action")
	// ErrUnknownEntity - сущность не существует или уже уничтожена.
	ErrUnknownEntity = errors.New("unknown entity")
)
