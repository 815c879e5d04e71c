package events

import "encoding/json"

// EventLevelTransition - имя события спуска на следующий уровень.
const EventLevelTransition = "LEVEL_TRANSITION"

// LevelTransition - событие, которое хендлер DESCEND отдает движку.
// Сам хендлер уровень не перестраивает: это делает сервис между ходами.
type LevelTransition struct {
	Event       string `json:"event"`
	TargetDepth int    `json:"targetDepth"`
}

// NewLevelTransition сериализует событие спуска.
func NewLevelTransition(targetDepth int) json.RawMessage {
	raw, _ := json.Marshal(LevelTransition{
		Event:       EventLevelTransition,
		TargetDepth: targetDepth,
	})
	return raw
}

// Parse распознает событие по полю event. Возвращает false, если это
// не LevelTransition.
func Parse(raw json.RawMessage) (LevelTransition, bool) {
	var lt LevelTransition
	if err := json.Unmarshal(raw, &lt); err != nil {
		return LevelTransition{}, false
	}
	return lt, lt.Event == EventLevelTransition
}
