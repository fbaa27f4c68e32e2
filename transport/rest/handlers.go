package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/pkg/session"
)

type gameUseCase interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (*usecase.GameView, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (*usecase.GameView, bool, error)
	Restart(ctx context.Context, sessionID string) (*usecase.GameView, bool, error)
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type gameResponse struct {
	Accepted *bool             `json:"accepted,omitempty"`
	Game     *usecase.GameView `json:"game,omitempty"`
	Error    string            `json:"error,omitempty"`
}

type Handlers struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
}

func NewHandlers(logger *slog.Logger, gameUseCase gameUseCase) *Handlers {
	return &Handlers{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
	}
}

// Register - mounts the handlers on mux.
func (that *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /ping", that.PingHandler)
	mux.HandleFunc("GET /api/game", that.GetGame)
	mux.HandleFunc("POST /api/game/turn", that.MakeTurn)
	mux.HandleFunc("POST /api/game/restart", that.Restart)
}

func (that *Handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func (that *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetGame")

	sessionID := that.session(w, r)

	game, err := that.gameUseCase.GetOrCreateGame(r.Context(), sessionID)
	if err != nil {
		log.Error("failed to get game", "sessionID", sessionID, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, gameResponse{Error: "failed to get the game"})
		return
	}

	that.writeJSON(w, http.StatusOK, gameResponse{Game: game})
}

func (that *Handlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "MakeTurn")

	sessionID := that.session(w, r)

	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, gameResponse{Error: "cell is required"})
		return
	}

	game, accepted, err := that.gameUseCase.MakeTurn(r.Context(), sessionID, *req.Cell)
	if err != nil {
		log.Error("failed to make turn", "sessionID", sessionID, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, gameResponse{Error: "failed to make turn"})
		return
	}

	that.writeJSON(w, http.StatusOK, gameResponse{Accepted: &accepted, Game: game})
}

func (that *Handlers) Restart(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Restart")

	sessionID := that.session(w, r)

	game, accepted, err := that.gameUseCase.Restart(r.Context(), sessionID)
	if err != nil {
		log.Error("failed to restart game", "sessionID", sessionID, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, gameResponse{Error: "failed to restart game"})
		return
	}

	that.writeJSON(w, http.StatusOK, gameResponse{Accepted: &accepted, Game: game})
}

func (that *Handlers) session(w http.ResponseWriter, r *http.Request) string {
	sessionID, cookie := session.FromRequest(r)
	if cookie != nil {
		http.SetCookie(w, cookie)
	}

	return sessionID
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, body gameResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
