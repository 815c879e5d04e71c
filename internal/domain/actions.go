package domain

import "fmt"

// ActionType - тип действия, запрошенного игроком
type ActionType string

const (
	ActionInit    ActionType = "INIT"
	ActionMove    ActionType = "MOVE"
	ActionWait    ActionType = "WAIT"
	ActionUseItem ActionType = "USE_ITEM"
	ActionPickup  ActionType = "PICKUP"
	ActionDrop    ActionType = "DROP"
	ActionDescend ActionType = "DESCEND"
	ActionQuit    ActionType = "QUIT"
)

var knownActions = map[ActionType]bool{
	ActionInit:    true,
	ActionMove:    true,
	ActionWait:    true,
	ActionUseItem: true,
	ActionPickup:  true,
	ActionDrop:    true,
	ActionDescend: true,
	ActionQuit:    true,
}

// ParseAction валидирует строковый тип действия из внешнего протокола.
func ParseAction(raw string) (ActionType, error) {
	t := ActionType(raw)
	if !knownActions[t] {
		return "", fmt.Errorf("%w: unknown action type %q", ErrInvalidAction, raw)
	}
	return t, nil
}
