package domain

import "encoding/json"

// InternalCommand - команда, поступившая от клиента в игровой цикл.
// SenderID заполняется транспортным слоем, не клиентом.
type InternalCommand struct {
	SenderID string
	Action   ActionType
	Payload  json.RawMessage
}
