package services

import (
	"testing"

	"github.com/Dosada05/tournament-site/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liguillaMatch(winner, loser string, setsW, setsL, gamesW, gamesL int) models.Match {
	return models.Match{
		Winner: winner, Loser: loser,
		SetsWon: setsW, SetsLost: setsL,
		GamesWon: gamesW, GamesLost: gamesL,
		Stage: models.StageLiguilla, Court: 1,
	}
}

func TestComputeStandings(t *testing.T) {
	matches := []models.Match{
		liguillaMatch("A", "B", 2, 0, 12, 4),
		liguillaMatch("C", "A", 2, 1, 12, 10),
	}

	standings := ComputeStandings([]string{"A", "B", "C"}, matches)

	// A and C tie on wins and set difference; A's game difference decides.
	require.Len(t, standings, 3)
	assert.Equal(t, models.StandingsRow{
		Position: 1, Team: "A", Played: 2, Wins: 1, Losses: 1,
		SetsFor: 3, SetsAgainst: 2, GamesFor: 22, GamesAgainst: 16,
		SetDiff: 1, GameDiff: 6,
	}, standings[0])
	assert.Equal(t, models.StandingsRow{
		Position: 2, Team: "C", Played: 1, Wins: 1, Losses: 0,
		SetsFor: 2, SetsAgainst: 1, GamesFor: 12, GamesAgainst: 10,
		SetDiff: 1, GameDiff: 2,
	}, standings[1])
	assert.Equal(t, models.StandingsRow{
		Position: 3, Team: "B", Played: 1, Wins: 0, Losses: 1,
		SetsFor: 0, SetsAgainst: 2, GamesFor: 4, GamesAgainst: 12,
		SetDiff: -2, GameDiff: -8,
	}, standings[2])
}

func TestComputeStandings_Totals(t *testing.T) {
	matches := []models.Match{
		liguillaMatch("A", "B", 2, 0, 12, 3),
		liguillaMatch("B", "C", 2, 1, 11, 9),
		liguillaMatch("C", "A", 2, 1, 12, 10),
		liguillaMatch("D", "A", 2, 0, 12, 0),
	}
	standings := ComputeStandings([]string{"A", "B", "C", "D"}, matches)

	var played, wins, losses, setDiff, gameDiff int
	for i, row := range standings {
		assert.Equal(t, i+1, row.Position)
		assert.Equal(t, row.Wins+row.Losses, row.Played, "%s: PJ = V + D", row.Team)
		assert.Equal(t, row.SetsFor-row.SetsAgainst, row.SetDiff, row.Team)
		assert.Equal(t, row.GamesFor-row.GamesAgainst, row.GameDiff, row.Team)
		played += row.Played
		wins += row.Wins
		losses += row.Losses
		setDiff += row.SetDiff
		gameDiff += row.GameDiff
	}
	assert.Equal(t, len(matches), wins)
	assert.Equal(t, len(matches), losses)
	assert.Equal(t, 2*len(matches), played)
	assert.Zero(t, setDiff)
	assert.Zero(t, gameDiff)
}

func TestComputeStandings_Tiebreaks(t *testing.T) {
	t.Run("alphabetical when everything ties", func(t *testing.T) {
		standings := ComputeStandings([]string{"Zeta", "Alfa", "Mu"}, nil)
		require.Len(t, standings, 3)
		assert.Equal(t, []string{"Alfa", "Mu", "Zeta"}, teamNames(standings))
		for _, row := range standings {
			assert.Zero(t, row.Played, "Teams without matches still get a row")
		}
	})

	t.Run("sets won after differences", func(t *testing.T) {
		matches := []models.Match{
			liguillaMatch("A", "X", 2, 1, 12, 10),
			liguillaMatch("B", "Y", 1, 0, 6, 4),
		}
		standings := ComputeStandings([]string{"B", "A", "X", "Y"}, matches)
		assert.Equal(t, []string{"A", "B", "X", "Y"}, teamNames(standings))
	})

	t.Run("games won last", func(t *testing.T) {
		matches := []models.Match{
			liguillaMatch("A", "X", 2, 0, 8, 6),
			liguillaMatch("B", "Y", 2, 0, 6, 4),
		}
		standings := ComputeStandings([]string{"B", "A", "X", "Y"}, matches)
		assert.Equal(t, "A", standings[0].Team)
		assert.Equal(t, "B", standings[1].Team)
	})
}

func TestComputeStandings_IgnoresUnknownTeams(t *testing.T) {
	matches := []models.Match{
		liguillaMatch("A", "Intruso", 2, 0, 12, 0),
		liguillaMatch("B", "A", 2, 0, 12, 0),
	}
	standings := ComputeStandings([]string{"A", "B", "A"}, matches)

	require.Len(t, standings, 2, "Duplicate roster names collapse into one row")
	assert.Equal(t, "B", standings[0].Team)
	assert.Equal(t, 1, standings[0].Wins)
	assert.Equal(t, 1, standings[1].Played, "The match against a team outside the roster is not counted")
}

func TestFilterGroupMatches(t *testing.T) {
	group := models.Group{Label: "Z", Teams: []string{"A", "B", "C"}}
	matches := []models.Match{
		liguillaMatch("A", "B", 2, 0, 12, 4),
		liguillaMatch("A", "D", 2, 0, 12, 4),
		liguillaMatch("E", "D", 2, 0, 12, 4),
		liguillaMatch("C", "A", 2, 1, 12, 10),
	}

	filtered := FilterGroupMatches(group, matches)
	require.Len(t, filtered, 2)
	assert.Equal(t, "B", filtered[0].Loser)
	assert.Equal(t, "C", filtered[1].Winner)
}

func teamNames(standings []models.StandingsRow) []string {
	names := make([]string, 0, len(standings))
	for _, row := range standings {
		names = append(names, row.Team)
	}
	return names
}
