package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type State string

const (
	StateAwaitingHumanMove State = "awaiting_human_move"
	StateComputerThinking  State = "computer_thinking"
	StateGameOver          State = "game_over"
)

const (
	messageComputerWins = "Computer wins!"
	messageDraw         = "It's a draw!"
)

// Report is what a finished game tells the outside world.
type Report struct {
	SessionID string
	Outcome   entity.Outcome
	Message   string
	Stats     entity.Stats
}

type Reporter interface {
	ReportGameOver(report Report)
}

type moveCalculator interface {
	BestMove(board *entity.Board) (int, error)
}

// GameController drives one session's games. It is not safe for concurrent use.
type GameController struct {
	session  *entity.Session
	state    State
	bot      moveCalculator
	reporter Reporter
}

func NewGameController(session *entity.Session, bot moveCalculator, reporter Reporter) *GameController {
	return &GameController{
		session:  session,
		state:    StateGameOver,
		bot:      bot,
		reporter: reporter,
	}
}

// Start - begins a new game. The opening mark alternates on every call, beginning with X.
func (that *GameController) Start() State {
	that.session.Board.Reset()
	that.session.Roles = entity.NewRoles()
	that.session.Outcome = entity.Outcome{Status: entity.StatusInProgress}
	that.session.Message = ""

	that.session.Turn = entity.PlayerO
	if that.session.XStartsNext {
		that.session.Turn = entity.PlayerX
	}
	that.session.XStartsNext = !that.session.XStartsNext

	that.state = that.stateForTurn()

	return that.state
}

// Restart - only a finished game can be restarted.
func (that *GameController) Restart() bool {
	if that.state != StateGameOver {
		return false
	}

	that.Start()

	return true
}

// HumanMove - applies the human's move. Moves out of turn, on a taken or unknown cell,
// or after the game is over are ignored and reported as false.
func (that *GameController) HumanMove(cell int) bool {
	if that.state != StateAwaitingHumanMove {
		return false
	}

	if !that.session.Board.IsEmptyCell(cell) {
		return false
	}

	if err := that.session.Board.Place(cell, that.session.Roles.Human); err != nil {
		return false
	}

	that.afterMove()

	return true
}

// ComputerMove - plays the searched move when the computer is on turn.
func (that *GameController) ComputerMove() (bool, error) {
	if that.state != StateComputerThinking {
		return false, nil
	}

	cell, err := that.bot.BestMove(&that.session.Board)
	if err != nil {
		return false, fmt.Errorf("bot failed to make turn: %w", err)
	}

	if err = that.session.Board.Place(cell, that.session.Roles.Computer); err != nil {
		return false, fmt.Errorf("bot chose an invalid cell: %w", err)
	}

	that.afterMove()

	return true, nil
}

func (that *GameController) State() State {
	return that.state
}

// Snapshot - a copy of the session, safe to hand to the display.
func (that *GameController) Snapshot() entity.Session {
	return *that.session
}

func (that *GameController) afterMove() {
	outcome := that.session.Board.Outcome()
	if outcome.IsFinished() {
		that.finish(outcome)
		return
	}

	that.session.Turn = that.session.Turn.Opponent()
	that.state = that.stateForTurn()
}

func (that *GameController) finish(outcome entity.Outcome) {
	that.state = StateGameOver
	that.session.Turn = entity.EmptyCell
	that.session.Outcome = outcome
	that.session.Message = outcomeMessage(outcome, that.session.Roles)
	that.session.Stats.Record(outcome, that.session.Roles)

	that.reporter.ReportGameOver(Report{
		SessionID: that.session.ID,
		Outcome:   outcome,
		Message:   that.session.Message,
		Stats:     that.session.Stats,
	})
}

func (that *GameController) stateForTurn() State {
	if that.session.Turn == that.session.Roles.Computer {
		return StateComputerThinking
	}
	return StateAwaitingHumanMove
}

func outcomeMessage(outcome entity.Outcome, roles entity.Roles) string {
	if outcome.Status == entity.StatusDraw {
		return messageDraw
	}

	if roles.RoleOf(outcome.Winner) == entity.RoleComputer {
		return messageComputerWins
	}

	return fmt.Sprintf("Player %s wins!", outcome.Winner)
}
