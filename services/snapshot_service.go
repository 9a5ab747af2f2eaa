package services

import (
	"fmt"
	"time"

	"github.com/Dosada05/tournament-site/brackets"
	"github.com/Dosada05/tournament-site/config"
	"github.com/Dosada05/tournament-site/models"
)

type SnapshotInput struct {
	Layout     config.Layout
	Extraction *ExtractionResult
	ExcelFile  string
	Title      string
	Now        time.Time
	Fixtures   brackets.FixtureGenerator
}

// BuildSnapshot runs standings, crosses and pending fixtures over an
// extraction. It is deterministic apart from the timestamp taken from in.Now.
func BuildSnapshot(in SnapshotInput) (*models.Snapshot, error) {
	if in.Extraction == nil || len(in.Extraction.Groups) == 0 {
		return nil, ErrNoGroups
	}
	fixtures := in.Fixtures
	if fixtures == nil {
		fixtures = brackets.NewRoundRobinGenerator()
	}

	snapshot := &models.Snapshot{
		UpdatedAt:   in.Now.Format(models.UpdatedAtLayout),
		ExcelFile:   in.ExcelFile,
		Groups:      make(map[string][]string, len(in.Extraction.Groups)),
		Matches:     in.Extraction.Matches,
		Standings:   make(map[string][]models.StandingsRow, len(in.Extraction.Groups)),
		Title:       in.Title,
		GeneratedAt: in.Now,
		GroupOrder:  make([]string, 0, len(in.Extraction.Groups)),
		Pending:     make([]models.Fixture, 0),
		Extraction:  in.Extraction.Report,
	}
	if snapshot.Matches == nil {
		snapshot.Matches = []models.Match{}
	}

	for _, group := range in.Extraction.Groups {
		teams := group.Teams
		if teams == nil {
			teams = []string{}
		}
		played := FilterGroupMatches(group, snapshot.Matches)

		snapshot.Groups[group.Label] = teams
		snapshot.Standings[group.Label] = ComputeStandings(teams, played)
		snapshot.GroupOrder = append(snapshot.GroupOrder, group.Label)
		snapshot.Pending = append(snapshot.Pending, brackets.PendingFixtures(fixtures, group, played)...)
	}

	a, okA := snapshot.Standings[in.Layout.Cross.GroupA]
	b, okB := snapshot.Standings[in.Layout.Cross.GroupB]
	if !okA || !okB {
		return nil, fmt.Errorf("%w: cross needs groups %q and %q", ErrUnknownGroup, in.Layout.Cross.GroupA, in.Layout.Cross.GroupB)
	}
	snapshot.Crosses = brackets.ResolveCrosses(brackets.CrossParams{
		GroupA:     in.Layout.Cross.GroupA,
		GroupB:     in.Layout.Cross.GroupB,
		StandingsA: a,
		StandingsB: b,
	})

	return snapshot, nil
}
