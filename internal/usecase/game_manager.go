package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const statsTimeout = 5 * time.Second

var ErrEmptySessionID = errors.New("session id is empty")

type statsRepo interface {
	Get(ctx context.Context, sessionID string) (*entity.Stats, error)
	Save(ctx context.Context, sessionID string, stats *entity.Stats) error
}

type publisher interface {
	Publish(sessionID string, view *GameView)
	IsConnected(sessionID string) bool
}

type moveCalculator interface {
	BestMove(board *entity.Board) (int, error)
}

// GameView is what the display gets to see of a session.
type GameView struct {
	SessionID    string          `json:"sessionId"`
	Board        entity.Board    `json:"board"`
	Turn         entity.Mark     `json:"turn"`
	State        tictactoe.State `json:"state"`
	Outcome      entity.Outcome  `json:"outcome"`
	Message      string          `json:"message,omitempty"`
	HumanMark    entity.Mark     `json:"humanMark"`
	ComputerMark entity.Mark     `json:"computerMark"`
	Stats        entity.Stats    `json:"stats"`
}

type gameSession struct {
	mu         sync.Mutex
	controller *tictactoe.GameController

	// guarded by GameManager.sessionsMutex
	lastSeen time.Time
}

func (that *gameSession) view() *GameView {
	snapshot := that.controller.Snapshot()

	return &GameView{
		SessionID:    snapshot.ID,
		Board:        snapshot.Board,
		Turn:         snapshot.Turn,
		State:        that.controller.State(),
		Outcome:      snapshot.Outcome,
		Message:      snapshot.Message,
		HumanMark:    snapshot.Roles.Human,
		ComputerMark: snapshot.Roles.Computer,
		Stats:        snapshot.Stats,
	}
}

// GameManager keeps one game per browser session and plays the computer's side
// after computerMoveDelay. Sessions idle for sessionTTL are dropped by RunEviction.
type GameManager struct {
	logger *slog.Logger

	statsRepo statsRepo
	publisher publisher
	bot       moveCalculator

	clock             quartz.Clock
	computerMoveDelay time.Duration
	sessionTTL        time.Duration

	sessionsMutex sync.Mutex
	sessions      map[string]*gameSession
}

func NewGameManager(
	logger *slog.Logger,
	statsRepo statsRepo,
	publisher publisher,
	bot moveCalculator,
	clock quartz.Clock,
	computerMoveDelay time.Duration,
	sessionTTL time.Duration,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		statsRepo: statsRepo,
		publisher: publisher,
		bot:       bot,

		clock:             clock,
		computerMoveDelay: computerMoveDelay,
		sessionTTL:        sessionTTL,

		sessions: make(map[string]*gameSession),
	}
}

// GetOrCreateGame - returns the session's game, starting the first one when needed.
func (that *GameManager) GetOrCreateGame(ctx context.Context, sessionID string) (*GameView, error) {
	session, err := that.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	return session.view(), nil
}

// MakeTurn - applies the human's move. The bool reports whether the move was accepted.
func (that *GameManager) MakeTurn(ctx context.Context, sessionID string, cell int) (*GameView, bool, error) {
	log := that.logger.With("method", "MakeTurn", "sessionID", sessionID, "cell", cell)

	session, err := that.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get session: %w", err)
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if !session.controller.HumanMove(cell) {
		log.Debug("move ignored", "state", session.controller.State())
		return session.view(), false, nil
	}

	that.afterChange(sessionID, session)

	return session.view(), true, nil
}

// Restart - starts the next game once the current one is over.
func (that *GameManager) Restart(ctx context.Context, sessionID string) (*GameView, bool, error) {
	log := that.logger.With("method", "Restart", "sessionID", sessionID)

	session, err := that.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get session: %w", err)
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if !session.controller.Restart() {
		log.Debug("restart ignored", "state", session.controller.State())
		return session.view(), false, nil
	}

	log.Info("game restarted", "turn", session.controller.Snapshot().Turn)

	that.afterChange(sessionID, session)

	return session.view(), true, nil
}

// afterChange publishes the new state and hands the turn to the computer when it is due.
// The caller holds session.mu.
func (that *GameManager) afterChange(sessionID string, session *gameSession) {
	that.publisher.Publish(sessionID, session.view())
	that.scheduleComputerTurn(sessionID, session)
}

// scheduleComputerTurn - fire and forget: once scheduled, the computer's move always happens.
func (that *GameManager) scheduleComputerTurn(sessionID string, session *gameSession) {
	if session.controller.State() != tictactoe.StateComputerThinking {
		return
	}

	that.clock.AfterFunc(that.computerMoveDelay, func() {
		that.computerTurn(sessionID, session)
	})
}

func (that *GameManager) computerTurn(sessionID string, session *gameSession) {
	log := that.logger.With("method", "computerTurn", "sessionID", sessionID)

	session.mu.Lock()
	defer session.mu.Unlock()

	moved, err := session.controller.ComputerMove()
	if err != nil {
		log.Error("computer failed to move", "error", err)
		return
	}

	if !moved {
		return
	}

	that.publisher.Publish(sessionID, session.view())
}

func (that *GameManager) getOrCreateSession(ctx context.Context, sessionID string) (*gameSession, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}

	if session, ok := that.lookupSession(sessionID); ok {
		return session, nil
	}

	// redis round trip stays outside sessionsMutex
	stats := that.loadStats(ctx, sessionID)

	that.sessionsMutex.Lock()
	defer that.sessionsMutex.Unlock()

	if session, ok := that.sessions[sessionID]; ok {
		session.lastSeen = that.clock.Now()
		return session, nil
	}

	session := &gameSession{lastSeen: that.clock.Now()}
	session.controller = tictactoe.NewGameController(
		entity.NewSession(sessionID, stats),
		that.bot,
		&statsReporter{logger: that.logger, statsRepo: that.statsRepo},
	)
	that.sessions[sessionID] = session

	session.mu.Lock()
	defer session.mu.Unlock()

	session.controller.Start()
	that.scheduleComputerTurn(sessionID, session)

	that.logger.Info("session created", "sessionID", sessionID, "gamesPlayed", stats.GamesPlayed)

	return session, nil
}

func (that *GameManager) lookupSession(sessionID string) (*gameSession, bool) {
	that.sessionsMutex.Lock()
	defer that.sessionsMutex.Unlock()

	session, ok := that.sessions[sessionID]
	if ok {
		session.lastSeen = that.clock.Now()
	}

	return session, ok
}

// RunEviction - every sessionTTL drops the sessions nobody touched for sessionTTL and
// nobody watches over a websocket. It stops when ctx is done; Wait returns ctx.Err().
// A dropped session starts over on its next request, its tally is reloaded from redis.
func (that *GameManager) RunEviction(ctx context.Context) quartz.Waiter {
	return that.clock.TickerFunc(ctx, that.sessionTTL, func() error {
		that.evictIdleSessions()
		return nil
	}, "evict")
}

func (that *GameManager) evictIdleSessions() {
	log := that.logger.With("method", "evictIdleSessions")

	that.sessionsMutex.Lock()
	defer that.sessionsMutex.Unlock()

	now := that.clock.Now()
	evicted := 0

	for sessionID, session := range that.sessions {
		if now.Sub(session.lastSeen) < that.sessionTTL {
			continue
		}

		if that.publisher.IsConnected(sessionID) {
			continue
		}

		delete(that.sessions, sessionID)
		evicted++
	}

	if evicted > 0 {
		log.Info("idle sessions evicted", "evicted", evicted, "remaining", len(that.sessions))
	}
}

// loadStats - a missing or broken record counts as no games played.
func (that *GameManager) loadStats(ctx context.Context, sessionID string) entity.Stats {
	log := that.logger.With("method", "loadStats", "sessionID", sessionID)

	stats, err := that.statsRepo.Get(ctx, sessionID)
	switch {
	case errors.Is(err, repository.ErrStatsNotFound):
		log.Debug("no stats yet")
		return entity.Stats{}
	case err != nil:
		log.Warn("could not load stats, starting from zero", "error", err)
		return entity.Stats{}
	}

	return *stats
}

// statsReporter persists the tally once per finished game.
type statsReporter struct {
	logger    *slog.Logger
	statsRepo statsRepo
}

func (that *statsReporter) ReportGameOver(report tictactoe.Report) {
	log := that.logger.With("method", "ReportGameOver", "sessionID", report.SessionID)

	ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
	defer cancel()

	if err := that.statsRepo.Save(ctx, report.SessionID, &report.Stats); err != nil {
		log.Error("failed to save stats", "error", err)
	}

	log.Info("game over", "result", report.Message, "status", report.Outcome.Status, "gamesPlayed", report.Stats.GamesPlayed)
}
