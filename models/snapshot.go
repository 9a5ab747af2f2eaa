package models

import "time"

// UpdatedAtLayout is the timestamp format of Snapshot.UpdatedAt.
const UpdatedAtLayout = "2006-01-02 15:04:05"

// Snapshot is the standings.json document.
type Snapshot struct {
	UpdatedAt string                    `json:"updated_at"`
	ExcelFile string                    `json:"excel_file"`
	Groups    map[string][]string       `json:"groups"`
	Matches   []Match                   `json:"matches"`
	Standings map[string][]StandingsRow `json:"standings"`
	Crosses   Crosses                   `json:"crosses"`

	// Not serialized; used by the page renderer.
	Title       string           `json:"-"`
	GeneratedAt time.Time        `json:"-"`
	GroupOrder  []string         `json:"-"`
	Pending     []Fixture        `json:"-"`
	Extraction  ExtractionReport `json:"-"`
}

type SkipReason string

const (
	SkipEmpty        SkipReason = "empty"
	SkipMissingTeam  SkipReason = "missing_team"
	SkipMissingScore SkipReason = "missing_score"
	SkipNonNumeric   SkipReason = "non_numeric"
)

// ExtractionReport counts what the match extractor kept and dropped.
type ExtractionReport struct {
	RegionsScanned int                `json:"regions_scanned"`
	MatchesFound   int                `json:"matches_found"`
	Skipped        map[SkipReason]int `json:"skipped"`
}

// SkippedTotal returns the number of dropped regions over all reasons.
func (r ExtractionReport) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}
