package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-site/models"
)

const (
	SemifinalOneUID = "SF1"
	SemifinalTwoUID = "SF2"
	FinalUID        = "F"
)

// CrossParams carries the two ranked group tables feeding the semifinals.
type CrossParams struct {
	GroupA     string
	GroupB     string
	StandingsA []models.StandingsRow
	StandingsB []models.StandingsRow
}

type SingleEliminationGenerator struct{}

func NewSingleEliminationGenerator() *SingleEliminationGenerator {
	return &SingleEliminationGenerator{}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

// GenerateBracket seeds the knockout phase from the group tables:
//
//	SF1: 1º B vs 2º A
//	SF2: 1º A vs 2º B
//	F:   winner SF1 vs winner SF2
//
// A rank missing from its table leaves that side nil. The final is always a
// placeholder: no result data path exists to resolve it.
func (g *SingleEliminationGenerator) GenerateBracket(params CrossParams) []*BracketMatch {
	sf1 := &BracketMatch{
		UID:          SemifinalOneUID,
		Label:        fmt.Sprintf("SF1 (1º %s vs 2º %s)", params.GroupB, params.GroupA),
		Round:        1,
		OrderInRound: 1,
		TeamA:        models.TeamAt(params.StandingsB, 1),
		TeamB:        models.TeamAt(params.StandingsA, 2),
	}
	sf2 := &BracketMatch{
		UID:          SemifinalTwoUID,
		Label:        fmt.Sprintf("SF2 (1º %s vs 2º %s)", params.GroupA, params.GroupB),
		Round:        1,
		OrderInRound: 2,
		TeamA:        models.TeamAt(params.StandingsA, 1),
		TeamB:        models.TeamAt(params.StandingsB, 2),
	}
	for _, sf := range []*BracketMatch{sf1, sf2} {
		sf.IsPlaceholder = sf.TeamA == nil || sf.TeamB == nil
	}

	sf1UID, sf2UID := sf1.UID, sf2.UID
	final := &BracketMatch{
		UID:             FinalUID,
		Label:           "Final",
		Round:           2,
		OrderInRound:    1,
		SourceMatch1UID: &sf1UID,
		SourceMatch2UID: &sf2UID,
		IsPlaceholder:   true,
	}

	return []*BracketMatch{sf1, sf2, final}
}

// ToCrosses converts a generated bracket into the published crosses object.
func ToCrosses(bracket []*BracketMatch) models.Crosses {
	crosses := models.Crosses{
		Semifinals: make([]models.CrossPairing, 0, 2),
		Final:      models.FinalResult{Champion: models.ChampionPending},
	}
	for _, bm := range bracket {
		if bm.Round != 1 {
			continue
		}
		crosses.Semifinals = append(crosses.Semifinals, models.CrossPairing{
			Label: bm.Label,
			A:     bm.TeamA,
			B:     bm.TeamB,
		})
	}
	return crosses
}

// ResolveCrosses is GenerateBracket followed by ToCrosses.
func ResolveCrosses(params CrossParams) models.Crosses {
	return ToCrosses(NewSingleEliminationGenerator().GenerateBracket(params))
}
