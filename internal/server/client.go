package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"rogue-server/internal/domain"
	"rogue-server/internal/engine"
	"rogue-server/internal/network"
	"rogue-server/pkg/api"
	"rogue-server/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и GameService
type Client struct {
	Game      *engine.GameService
	Hub       *network.Broadcaster
	Conn      *websocket.Conn
	Send      chan []byte
	SessionID string
}

func NewClient(game *engine.GameService, hub *network.Broadcaster, conn *websocket.Conn) *Client {
	return &Client{
		Game:      game,
		Hub:       hub,
		Conn:      conn,
		Send:      make(chan []byte, 256),
		SessionID: uuid.NewString(),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister(c.SessionID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
		logger.Log.WithField("session", c.SessionID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. ПОДПИСКА НА ОБНОВЛЕНИЯ
	updates := c.Hub.Register(c.SessionID)
	go c.forwardUpdates(updates)

	logger.Log.WithField("session", c.SessionID).Info("Client connected")

	// 2. INIT - триггер первой отрисовки
	c.Game.CommandChan <- domain.InternalCommand{
		SenderID: c.SessionID,
		Action:   domain.ActionInit,
	}

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}

		action, err := domain.ParseAction(cmd.Action)
		if err != nil {
			c.sendError(err)
			continue
		}
		c.Game.CommandChan <- domain.InternalCommand{
			SenderID: c.SessionID,
			Action:   action,
			Payload:  cmd.Payload,
		}
	}
}

// forwardUpdates перекачивает кадры из хаба в канал writePump.
// Отправка неблокирующая, как в самом хабе: если writePump умер с
// полным буфером, кадр отбрасывается, а не вешает горутину навсегда.
func (c *Client) forwardUpdates(updates <-chan []byte) {
	for msg := range updates {
		select {
		case c.Send <- msg:
		default:
		}
	}
	close(c.Send)
}

// sendError отвечает на мусорную команду, не трогая игровой цикл.
func (c *Client) sendError(err error) {
	resp := api.ServerResponse{
		Type: "ERROR",
		Logs: []api.LogEntry{{
			ID:        uuid.NewString(),
			Text:      err.Error(),
			Type:      "ERROR",
			Timestamp: time.Now().UnixMilli(),
		}},
	}
	data, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		return
	}
	c.Hub.SendTo(c.SessionID, data)
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Log.WithError(err).Debug("write message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
