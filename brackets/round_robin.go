package brackets

import (
	"github.com/Dosada05/tournament-site/models"
)

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() FixtureGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// GenerateFixtures returns every unordered pairing of the roster once, in
// roster order: (t0,t1), (t0,t2), ..., (t1,t2), ...
func (g *RoundRobinGenerator) GenerateFixtures(group models.Group) []models.Fixture {
	fixtures := make([]models.Fixture, 0)
	for i := 0; i < len(group.Teams); i++ {
		for j := i + 1; j < len(group.Teams); j++ {
			if group.Teams[i] == group.Teams[j] {
				continue
			}
			fixtures = append(fixtures, models.Fixture{
				Group: group.Label,
				TeamA: group.Teams[i],
				TeamB: group.Teams[j],
			})
		}
	}
	return fixtures
}

// PendingFixtures filters out the fixtures already played in either
// orientation.
func PendingFixtures(gen FixtureGenerator, group models.Group, played []models.Match) []models.Fixture {
	pending := make([]models.Fixture, 0)
	for _, f := range gen.GenerateFixtures(group) {
		done := false
		for _, m := range played {
			if m.Involves(f.TeamA, f.TeamB) {
				done = true
				break
			}
		}
		if !done {
			pending = append(pending, f)
		}
	}
	return pending
}
