package models

// StandingsRow is the per-team line of a group table.
// JSON keys keep the Spanish column names used by the published snapshot.
type StandingsRow struct {
	Position     int    `json:"Pos"`
	Team         string `json:"Equipo"`
	Played       int    `json:"PJ"`
	Wins         int    `json:"V"`
	Losses       int    `json:"D"`
	SetsFor      int    `json:"Sets_F"`
	SetsAgainst  int    `json:"Sets_C"`
	GamesFor     int    `json:"Juegos_F"`
	GamesAgainst int    `json:"Juegos_C"`
	SetDiff      int    `json:"Dif_Sets"`
	GameDiff     int    `json:"Dif_Juegos"`
}

// Qualifies reports whether the row holds a semifinal spot.
func (r StandingsRow) Qualifies() bool {
	return r.Position == 1 || r.Position == 2
}

// TeamAt returns the team holding position pos, or nil when no row has it.
func TeamAt(standings []StandingsRow, pos int) *string {
	for _, r := range standings {
		if r.Position == pos {
			team := r.Team
			return &team
		}
	}
	return nil
}
