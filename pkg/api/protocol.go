package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse - корневой объект, который сервер отправляет клиенту:
// полный снимок мира, видимого этому клиенту. Отправляется после
// каждого завершенного хода.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE", "GAME_OVER", "LEVEL_COMPLETE".
	Type string `json:"type"`

	// Turn номер завершенного хода.
	Turn int `json:"turn"`

	// Depth глубина текущего уровня.
	Depth int `json:"depth"`

	// State текущее состояние цикла хода (см. engine.TurnState).
	State string `json:"state"`

	// MyEntityID ID сущности, которой управляет данный клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез видимых и/или исследованных тайлов.
	Map []TileView `json:"map,omitempty"`

	// Entities срез видимых сущностей.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs новые сообщения с прошлого хода.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит размеры карты для подготовки сетки рендеринга.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView - DTO одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Terrain - "WALL", "FLOOR", "STAIRS_DOWN".
	Terrain string `json:"terrain"`

	// IsVisible true, если тайл в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был увиден. Туман войны:
	// IsExplored без IsVisible рендерится тускло.
	IsExplored bool `json:"isExplored"`
}

// EntityView - DTO игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, NPC, ITEM
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	// Stats может отсутствовать, если клиенту не положено их видеть.
	Stats *StatsView `json:"stats,omitempty"`

	// Inventory рюкзак (только для собственной сущности клиента).
	Inventory *InventoryView `json:"inventory,omitempty"`
}

// StatsView - DTO характеристик сущности.
type StatsView struct {
	HP       int  `json:"hp"`
	MaxHP    int  `json:"maxHp"`
	Strength int  `json:"strength,omitempty"`
	Defense  int  `json:"defense,omitempty"`
	IsDead   bool `json:"isDead"`
}

// ItemView представляет предмет для клиента
type ItemView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
}

// InventoryView представляет рюкзак для клиента
type InventoryView struct {
	Items    []ItemView `json:"items"`
	Capacity int        `json:"capacity"`
}

// LogEntry - одна запись игрового лога.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - корневой объект всех сообщений от клиента.
type ClientCommand struct {
	// Action название действия.
	Action string `json:"action"`

	// Payload JSON-объект с данными; структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для действий с направлением (MOVE).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// ItemPayload используется для действий с предметами (PICKUP, DROP, USE_ITEM).
type ItemPayload struct {
	ItemID string `json:"itemId"`
}
