package entity

type OutcomeStatus string

const (
	StatusInProgress OutcomeStatus = "in_progress"
	StatusWin        OutcomeStatus = "win"
	StatusDraw       OutcomeStatus = "draw"
)

type Outcome struct {
	Status OutcomeStatus `json:"status"`
	Winner Mark          `json:"winner,omitempty"`
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

type Role string

const (
	RoleHuman    Role = "human"
	RoleComputer Role = "computer"
)

// Roles binds each side to the mark it plays for one game.
type Roles struct {
	Human    Mark `json:"human"`
	Computer Mark `json:"computer"`
}

// NewRoles - the human always plays X and the computer O; which mark opens alternates between games.
func NewRoles() Roles {
	return Roles{Human: PlayerX, Computer: PlayerO}
}

func (that Roles) MarkOf(role Role) Mark {
	if role == RoleComputer {
		return that.Computer
	}
	return that.Human
}

func (that Roles) RoleOf(mark Mark) Role {
	if mark == that.Computer {
		return RoleComputer
	}
	return RoleHuman
}
