package services

import (
	"sort"

	"github.com/Dosada05/tournament-site/models"
)

// FilterGroupMatches keeps the matches whose two teams both belong to group.
func FilterGroupMatches(group models.Group, matches []models.Match) []models.Match {
	filtered := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if group.Has(m.Winner) && group.Has(m.Loser) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// ComputeStandings builds the ranked table of a group. Every roster team gets
// a row, played or not. Matches naming a team outside the roster are ignored.
//
// Order: wins, set difference, game difference, sets won, games won (all
// descending), then team name ascending.
func ComputeStandings(roster []string, matches []models.Match) []models.StandingsRow {
	index := make(map[string]*models.StandingsRow, len(roster))
	rows := make([]*models.StandingsRow, 0, len(roster))
	for _, team := range roster {
		if _, dup := index[team]; dup {
			continue
		}
		row := &models.StandingsRow{Team: team}
		index[team] = row
		rows = append(rows, row)
	}

	for _, m := range matches {
		w, okW := index[m.Winner]
		l, okL := index[m.Loser]
		if !okW || !okL {
			continue
		}

		w.Played++
		l.Played++
		w.Wins++
		l.Losses++

		w.SetsFor += m.SetsWon
		w.SetsAgainst += m.SetsLost
		l.SetsFor += m.SetsLost
		l.SetsAgainst += m.SetsWon

		w.GamesFor += m.GamesWon
		w.GamesAgainst += m.GamesLost
		l.GamesFor += m.GamesLost
		l.GamesAgainst += m.GamesWon
	}

	standings := make([]models.StandingsRow, 0, len(rows))
	for _, r := range rows {
		r.SetDiff = r.SetsFor - r.SetsAgainst
		r.GameDiff = r.GamesFor - r.GamesAgainst
		standings = append(standings, *r)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return ranksAbove(standings[i], standings[j])
	})
	for i := range standings {
		standings[i].Position = i + 1
	}
	return standings
}

func ranksAbove(a, b models.StandingsRow) bool {
	switch {
	case a.Wins != b.Wins:
		return a.Wins > b.Wins
	case a.SetDiff != b.SetDiff:
		return a.SetDiff > b.SetDiff
	case a.GameDiff != b.GameDiff:
		return a.GameDiff > b.GameDiff
	case a.SetsFor != b.SetsFor:
		return a.SetsFor > b.SetsFor
	case a.GamesFor != b.GamesFor:
		return a.GamesFor > b.GamesFor
	default:
		return a.Team < b.Team
	}
}
