package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

var ErrInvalidLayout = errors.New("invalid workbook layout")

// Layout describes where the scorekeeping template keeps its data.
type Layout struct {
	Sheet    string        `yaml:"sheet"`
	Groups   []GroupLayout `yaml:"groups"`
	Cross    CrossLayout   `yaml:"cross"`
	Liguilla LiguillaRange `yaml:"liguilla"`
}

type GroupLayout struct {
	Label string   `yaml:"label"`
	Cells []string `yaml:"cells"`
}

// CrossLayout names the groups feeding the semifinals:
// SF1 = 1º GroupB vs 2º GroupA, SF2 = 1º GroupA vs 2º GroupB.
type CrossLayout struct {
	GroupA string `yaml:"group_a"`
	GroupB string `yaml:"group_b"`
}

type LiguillaRange struct {
	FirstRow int           `yaml:"first_row"`
	LastRow  int           `yaml:"last_row"`
	Courts   []CourtLayout `yaml:"courts"`
}

type CourtLayout struct {
	Number  int          `yaml:"number"`
	Columns CourtColumns `yaml:"columns"`
}

type CourtColumns struct {
	Winner    string `yaml:"winner"`
	Loser     string `yaml:"loser"`
	SetsWon   string `yaml:"sets_won"`
	SetsLost  string `yaml:"sets_lost"`
	GamesWon  string `yaml:"games_won"`
	GamesLost string `yaml:"games_lost"`
}

// DefaultLayout returns the layout of the "Mini Torneo Navidad 2025" template.
func DefaultLayout() Layout {
	return Layout{
		Sheet: "Liguilla Navidad 2025",
		Groups: []GroupLayout{
			{Label: "Z", Cells: []string{"E9", "E10", "E11"}},
			{Label: "Y", Cells: []string{"Q9", "Q10", "Q11"}},
		},
		Cross: CrossLayout{GroupA: "Y", GroupB: "Z"},
		Liguilla: LiguillaRange{
			FirstRow: 23,
			LastRow:  54,
			Courts: []CourtLayout{
				{Number: 1, Columns: CourtColumns{Winner: "X", Loser: "Y", SetsWon: "Z", SetsLost: "AA", GamesWon: "AB", GamesLost: "AC"}},
				{Number: 2, Columns: CourtColumns{Winner: "AE", Loser: "AF", SetsWon: "AG", SetsLost: "AH", GamesWon: "AI", GamesLost: "AJ"}},
			},
		},
	}
}

// LoadLayout reads a YAML layout file. An empty path yields DefaultLayout.
// Keys missing from the file keep their default values.
func LoadLayout(path string) (Layout, error) {
	layout := DefaultLayout()
	if strings.TrimSpace(path) == "" {
		return layout, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &layout); err != nil {
		return Layout{}, fmt.Errorf("%w: %s: %w", ErrInvalidLayout, path, err)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

func (l Layout) Validate() error {
	if strings.TrimSpace(l.Sheet) == "" {
		return fmt.Errorf("%w: sheet name is required", ErrInvalidLayout)
	}
	if len(l.Groups) != 2 {
		return fmt.Errorf("%w: exactly 2 groups required, got %d", ErrInvalidLayout, len(l.Groups))
	}

	labels := make(map[string]bool, len(l.Groups))
	for _, g := range l.Groups {
		if strings.TrimSpace(g.Label) == "" {
			return fmt.Errorf("%w: group label is required", ErrInvalidLayout)
		}
		if labels[g.Label] {
			return fmt.Errorf("%w: duplicate group label %q", ErrInvalidLayout, g.Label)
		}
		labels[g.Label] = true
		for _, cell := range g.Cells {
			if _, _, err := excelize.CellNameToCoordinates(cell); err != nil {
				return fmt.Errorf("%w: group %s cell %q: %w", ErrInvalidLayout, g.Label, cell, err)
			}
		}
	}

	if !labels[l.Cross.GroupA] || !labels[l.Cross.GroupB] || l.Cross.GroupA == l.Cross.GroupB {
		return fmt.Errorf("%w: cross groups %q/%q must name both groups", ErrInvalidLayout, l.Cross.GroupA, l.Cross.GroupB)
	}

	if l.Liguilla.FirstRow < 1 || l.Liguilla.FirstRow > l.Liguilla.LastRow {
		return fmt.Errorf("%w: liguilla rows %d..%d", ErrInvalidLayout, l.Liguilla.FirstRow, l.Liguilla.LastRow)
	}
	if len(l.Liguilla.Courts) == 0 {
		return fmt.Errorf("%w: at least one court is required", ErrInvalidLayout)
	}
	for _, court := range l.Liguilla.Courts {
		for _, col := range court.Columns.All() {
			if _, err := excelize.ColumnNameToNumber(col); err != nil {
				return fmt.Errorf("%w: court %d column %q: %w", ErrInvalidLayout, court.Number, col, err)
			}
		}
	}
	return nil
}

// All lists the columns in winner, loser, sets, games order.
func (c CourtColumns) All() []string {
	return []string{c.Winner, c.Loser, c.SetsWon, c.SetsLost, c.GamesWon, c.GamesLost}
}
