package entity

// Stats is the flat counters record persisted between sessions.
type Stats struct {
	GamesPlayed  int `json:"gamesPlayed"`
	HumanWins    int `json:"humanWins"`
	ComputerWins int `json:"computerWins"`
	Draws        int `json:"draws"`
}

// Record counts a finished game. Unfinished outcomes are ignored.
func (that *Stats) Record(outcome Outcome, roles Roles) {
	switch outcome.Status {
	case StatusWin:
		that.GamesPlayed++
		if roles.RoleOf(outcome.Winner) == RoleComputer {
			that.ComputerWins++
		} else {
			that.HumanWins++
		}
	case StatusDraw:
		that.GamesPlayed++
		that.Draws++
	case StatusInProgress:
	}
}

func (that *Stats) IsValid() bool {
	return that.GamesPlayed >= 0 && that.HumanWins >= 0 && that.ComputerWins >= 0 && that.Draws >= 0
}
