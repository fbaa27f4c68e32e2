package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/pkg/session"
)

const (
	actionGameTurn    = "game:turn"
	actionGameRestart = "game:restart"
	actionError       = "error"
)

const (
	// a peer that answers no ping within pongWait is dropped
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096
)

var ErrCellRequired = errors.New("cell is required")

type gameUseCase interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (*usecase.GameView, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (*usecase.GameView, bool, error)
	Restart(ctx context.Context, sessionID string) (*usecase.GameView, bool, error)
}

type turnPayload struct {
	Cell *int `json:"cell"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// Server upgrades /ws requests and feeds the moves they send to the game.
type Server struct {
	logger      *slog.Logger
	hub         *Hub
	gameUseCase gameUseCase
	upgrader    websocket.Upgrader

	handlers map[string]func(ctx context.Context, sessionID string, msg *Message) (*usecase.GameView, bool, error)
}

func New(logger *slog.Logger, hub *Hub, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		hub:         hub,
		gameUseCase: gameUseCase,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	server.handlers = map[string]func(context.Context, string, *Message) (*usecase.GameView, bool, error){
		actionGameTurn:    server.handleGameTurn,
		actionGameRestart: server.handleGameRestart,
	}

	return server
}

func (that *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /ws", that.ServeWS)
}

// ServeWS - upgrades the connection, sends the current game and then processes client messages.
func (that *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	sessionID, cookie := session.FromRequest(r)
	log := that.logger.With("method", "ServeWS", "sessionID", sessionID)

	header := http.Header{}
	if cookie != nil {
		header.Add("Set-Cookie", cookie.String())
	}

	wsConn, err := that.upgrader.Upgrade(w, r, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := &connection{conn: wsConn}
	that.hub.add(sessionID, conn)

	done := make(chan struct{})

	defer func() {
		close(done)
		that.hub.remove(sessionID, conn)
		_ = wsConn.Close()
		log.Info("WebSocket connection closed")
	}()

	wsConn.SetReadLimit(maxMessageSize)
	_ = wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		return wsConn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go conn.keepAlive(done)

	log.Info("WebSocket connection established")

	ctx := r.Context()

	game, err := that.gameUseCase.GetOrCreateGame(ctx, sessionID)
	if err != nil {
		log.Error("failed to get game", "error", err)
		return
	}

	if err = that.send(conn, actionGameState, game); err != nil {
		log.Error("failed to send game", "error", err)
		return
	}

	if err = that.handleMessages(ctx, sessionID, conn); err != nil {
		log.Debug("stopped reading messages", "error", err)
	}
}

func (that *Server) handleMessages(ctx context.Context, sessionID string, conn *connection) error {
	log := that.logger.With("method", "handleMessages", "sessionID", sessionID)

	for {
		_, data, err := conn.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var msg Message
		if err = json.Unmarshal(data, &msg); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			_ = that.send(conn, actionError, errorPayload{Error: "invalid message"})
			continue
		}

		handler, ok := that.handlers[msg.Action]
		if !ok {
			log.Warn("unknown action", "action", msg.Action)
			_ = that.send(conn, actionError, errorPayload{Error: "unknown action " + msg.Action})
			continue
		}

		game, accepted, err := handler(ctx, sessionID, &msg)
		if err != nil {
			log.Error("error processing message", "action", msg.Action, "error", err)
			_ = that.send(conn, actionError, errorPayload{Error: err.Error()})
			continue
		}

		// accepted changes are pushed by the hub to every connection of the session
		if !accepted {
			if err = that.send(conn, actionGameState, game); err != nil {
				return err
			}
		}
	}
}

func (that *Server) handleGameTurn(ctx context.Context, sessionID string, msg *Message) (*usecase.GameView, bool, error) {
	var payload turnPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Cell == nil {
		return nil, false, ErrCellRequired
	}

	game, accepted, err := that.gameUseCase.MakeTurn(ctx, sessionID, *payload.Cell)
	if err != nil {
		return nil, false, fmt.Errorf("failed to make turn: %w", err)
	}

	return game, accepted, nil
}

func (that *Server) handleGameRestart(ctx context.Context, sessionID string, _ *Message) (*usecase.GameView, bool, error) {
	game, accepted, err := that.gameUseCase.Restart(ctx, sessionID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to restart game: %w", err)
	}

	return game, accepted, nil
}

func (that *Server) send(conn *connection, action string, payload any) error {
	data, err := encode(action, payload)
	if err != nil {
		return err
	}

	return conn.write(data)
}
