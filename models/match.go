package models

type Stage string

const (
	StageLiguilla Stage = "Liguilla"
)

// Match is one played match as recorded in the scorekeeping sheet.
type Match struct {
	Winner    string `json:"winner"`
	Loser     string `json:"loser"`
	SetsWon   int    `json:"sets_w"`
	SetsLost  int    `json:"sets_l"`
	GamesWon  int    `json:"games_w"`
	GamesLost int    `json:"games_l"`
	Stage     Stage  `json:"stage"`
	Court     int    `json:"pista"`
}

// Involves reports whether the match was played between a and b, in either order.
func (m Match) Involves(a, b string) bool {
	return (m.Winner == a && m.Loser == b) || (m.Winner == b && m.Loser == a)
}

// Fixture is a round-robin pairing of a group.
type Fixture struct {
	Group string `json:"group"`
	TeamA string `json:"team_a"`
	TeamB string `json:"team_b"`
}
