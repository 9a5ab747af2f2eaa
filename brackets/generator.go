package brackets

import "github.com/Dosada05/tournament-site/models"

// BracketMatch is one slot of the knockout phase. Teams stay nil until the
// slot is resolved; SourceMatch UIDs point at the slots feeding it.
type BracketMatch struct {
	UID          string
	Label        string
	Round        int
	OrderInRound int

	TeamA *string
	TeamB *string

	SourceMatch1UID *string
	SourceMatch2UID *string

	IsPlaceholder bool
}

// FixtureGenerator enumerates the pairings a group has to play.
type FixtureGenerator interface {
	GenerateFixtures(group models.Group) []models.Fixture

	GetName() string
}
