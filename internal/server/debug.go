package server

import (
	"encoding/json"
	"net/http"

	"rogue-server/internal/engine"
	"rogue-server/internal/network"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
	Hub     *network.Broadcaster
}

func NewDebugHandler(s *engine.GameService, hub *network.Broadcaster) *DebugHandler {
	return &DebugHandler{Service: s, Hub: hub}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/level", h.handleLevelSummary)
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
}

// /debug/level - сводка активного уровня
func (h *DebugHandler) handleLevelSummary(w http.ResponseWriter, r *http.Request) {
	sched := h.Service.Scheduler()
	world := sched.World()

	type LevelSummary struct {
		Depth       int    `json:"depth"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		EntityCount int    `json:"entity_count"`
		Turn        int    `json:"turn"`
		State       string `json:"state"`
		Subscribers int    `json:"subscribers"`
	}

	writeJSON(w, LevelSummary{
		Depth:       world.Depth,
		Width:       world.Width,
		Height:      world.Height,
		EntityCount: sched.Store().Count(),
		Turn:        sched.Turn(),
		State:       sched.State().String(),
		Subscribers: h.Hub.SubscriberCount(),
	})
}

// /debug/entities - дамп всех сущностей уровня, включая скрытые статы
// и состояние ИИ. Read-only доступ: гонки с игровым циклом для
// отладочной ручки терпимы.
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Scheduler().Store().All())
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// nil превращаем в пустой массив, а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
