package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/tournament-site/config"
	"github.com/Dosada05/tournament-site/models"
	"github.com/Dosada05/tournament-site/repositories"
)

// ExtractionResult is everything the extractor reads from one workbook.
type ExtractionResult struct {
	Groups  []models.Group
	Matches []models.Match
	Report  models.ExtractionReport
}

type ExtractorService interface {
	Extract(reader repositories.CellReader) (*ExtractionResult, error)
}

type extractorService struct {
	layout config.Layout
	logger *slog.Logger
}

func NewExtractorService(layout config.Layout, logger *slog.Logger) ExtractorService {
	return &extractorService{layout: layout, logger: logger}
}

func (s *extractorService) Extract(reader repositories.CellReader) (*ExtractionResult, error) {
	if len(s.layout.Groups) == 0 {
		return nil, ErrNoGroups
	}
	if !reader.HasSheet(s.layout.Sheet) {
		return nil, fmt.Errorf("%w: %q", repositories.ErrSheetNotFound, s.layout.Sheet)
	}

	groups := make([]models.Group, 0, len(s.layout.Groups))
	for _, gl := range s.layout.Groups {
		group, err := s.readGroup(reader, gl)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	result := &ExtractionResult{
		Groups:  groups,
		Matches: make([]models.Match, 0),
		Report:  models.ExtractionReport{Skipped: make(map[models.SkipReason]int)},
	}

	lig := s.layout.Liguilla
	for row := lig.FirstRow; row <= lig.LastRow; row++ {
		for _, court := range lig.Courts {
			result.Report.RegionsScanned++
			match, reason, err := s.readMatch(reader, row, court)
			if err != nil {
				return nil, err
			}
			if match == nil {
				result.Report.Skipped[reason]++
				if reason != models.SkipEmpty {
					s.logger.Debug("liguilla region skipped",
						slog.Int("row", row),
						slog.Int("pista", court.Number),
						slog.String("reason", string(reason)))
				}
				continue
			}
			result.Matches = append(result.Matches, *match)
		}
	}
	result.Report.MatchesFound = len(result.Matches)

	return result, nil
}

func (s *extractorService) readGroup(reader repositories.CellReader, gl config.GroupLayout) (models.Group, error) {
	teams := make([]string, 0, len(gl.Cells))
	for _, cell := range gl.Cells {
		name, ok, err := s.readName(reader, cell)
		if err != nil {
			return models.Group{}, fmt.Errorf("failed to read group %s roster: %w", gl.Label, err)
		}
		if !ok {
			continue
		}
		teams = append(teams, name)
	}
	return models.Group{Label: gl.Label, Teams: teams}, nil
}

// readName returns the trimmed team name at axis. Only non-blank text cells
// hold names; numbers, booleans and errors do not.
func (s *extractorService) readName(reader repositories.CellReader, axis string) (string, bool, error) {
	v, err := reader.CellValue(s.layout.Sheet, axis)
	if err != nil {
		return "", false, err
	}
	name := strings.TrimSpace(v)
	if name == "" {
		return "", false, nil
	}
	cellType, err := reader.CellType(s.layout.Sheet, axis)
	if err != nil {
		return "", false, err
	}
	if !repositories.IsTextCell(cellType) {
		s.logger.Debug("non-text cell ignored as team name",
			slog.String("cell", axis),
			slog.String("value", name))
		return "", false, nil
	}
	return name, true, nil
}

// readMatch returns nil and the skip reason when the court region does not
// hold a complete result.
func (s *extractorService) readMatch(reader repositories.CellReader, row int, court config.CourtLayout) (*models.Match, models.SkipReason, error) {
	axes := make([]string, 0, 6)
	values := make([]string, 0, 6)
	for _, col := range court.Columns.All() {
		axis, err := repositories.CellName(col, row)
		if err != nil {
			return nil, "", fmt.Errorf("invalid cell for pista %d row %d: %w", court.Number, row, err)
		}
		v, err := reader.CellValue(s.layout.Sheet, axis)
		if err != nil {
			return nil, "", err
		}
		axes = append(axes, axis)
		values = append(values, strings.TrimSpace(v))
	}
	if strings.Join(values, "") == "" {
		return nil, models.SkipEmpty, nil
	}

	winner, okW, err := s.readName(reader, axes[0])
	if err != nil {
		return nil, "", err
	}
	loser, okL, err := s.readName(reader, axes[1])
	if err != nil {
		return nil, "", err
	}
	if !okW || !okL {
		return nil, models.SkipMissingTeam, nil
	}

	nums := make([]int, 0, 4)
	for _, raw := range values[2:] {
		if raw == "" {
			return nil, models.SkipMissingScore, nil
		}
		n, err := repositories.ParseCellInt(raw)
		if err != nil {
			if errors.Is(err, repositories.ErrNotNumeric) {
				return nil, models.SkipNonNumeric, nil
			}
			return nil, "", err
		}
		nums = append(nums, n)
	}

	return &models.Match{
		Winner:    winner,
		Loser:     loser,
		SetsWon:   nums[0],
		SetsLost:  nums[1],
		GamesWon:  nums[2],
		GamesLost: nums[3],
		Stage:     models.StageLiguilla,
		Court:     court.Number,
	}, "", nil
}
