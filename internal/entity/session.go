package entity

// Session is the whole mutable state of one player's series of games.
type Session struct {
	ID      string  `json:"id"`
	Board   Board   `json:"board"`
	Turn    Mark    `json:"turn"`
	Roles   Roles   `json:"roles"`
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message,omitempty"`
	Stats   Stats   `json:"stats"`

	// XStartsNext flips once per game start, whoever won.
	XStartsNext bool `json:"-"`
}

func NewSession(id string, stats Stats) *Session {
	return &Session{
		ID:          id,
		Roles:       NewRoles(),
		Outcome:     Outcome{Status: StatusInProgress},
		Stats:       stats,
		XStartsNext: true,
	}
}
