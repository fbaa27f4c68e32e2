package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

const (
	actionGameState = "game:state"
	writeWait       = 10 * time.Second
)

// Message is the envelope of every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type connection struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (that *connection) write(data []byte) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// keepAlive pings the peer every pingPeriod until done is closed or a ping fails.
func (that *connection) keepAlive(done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := that.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// Hub keeps the open connections of each session and pushes game state to them.
type Hub struct {
	logger *slog.Logger

	connectionsMutex sync.RWMutex
	connections      map[string]map[*connection]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:      logger.With("component", "websocket_hub"),
		connections: make(map[string]map[*connection]struct{}),
	}
}

// Publish - sends the view to every connection of the session.
func (that *Hub) Publish(sessionID string, view *usecase.GameView) {
	log := that.logger.With("method", "Publish", "sessionID", sessionID)

	data, err := encode(actionGameState, view)
	if err != nil {
		log.Error("failed to encode game state", "error", err)
		return
	}

	that.connectionsMutex.RLock()
	conns := make([]*connection, 0, len(that.connections[sessionID]))
	for conn := range that.connections[sessionID] {
		conns = append(conns, conn)
	}
	that.connectionsMutex.RUnlock()

	for _, conn := range conns {
		if err = conn.write(data); err != nil {
			log.Warn("failed to push game state", "error", err)
		}
	}
}

// IsConnected - whether the session has at least one open connection.
func (that *Hub) IsConnected(sessionID string) bool {
	that.connectionsMutex.RLock()
	defer that.connectionsMutex.RUnlock()

	return len(that.connections[sessionID]) > 0
}

func (that *Hub) add(sessionID string, conn *connection) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	if that.connections[sessionID] == nil {
		that.connections[sessionID] = make(map[*connection]struct{})
	}
	that.connections[sessionID][conn] = struct{}{}
}

func (that *Hub) remove(sessionID string, conn *connection) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	delete(that.connections[sessionID], conn)
	if len(that.connections[sessionID]) == 0 {
		delete(that.connections, sessionID)
	}
}

func encode(action string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: raw})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}
