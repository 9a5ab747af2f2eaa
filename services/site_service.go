package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Dosada05/tournament-site/brackets"
	"github.com/Dosada05/tournament-site/config"
	"github.com/Dosada05/tournament-site/metrics"
	"github.com/Dosada05/tournament-site/models"
	"github.com/Dosada05/tournament-site/render"
	"github.com/Dosada05/tournament-site/repositories"
	"github.com/Dosada05/tournament-site/storage"
)

type SiteServiceConfig struct {
	ExcelPath       string
	OutputDir       string
	Title           string
	MarkdownEnabled bool
}

// WorkbookOpener opens the source workbook; repositories.OpenWorkbook in production.
type WorkbookOpener func(path string) (repositories.CellReader, error)

type SiteService interface {
	// Generate reads the workbook and renders every artifact in memory.
	Generate(ctx context.Context) (*models.Snapshot, []storage.Artifact, error)
	// Build runs Generate, writes the artifacts to the output directory and
	// publishes them when a publisher is configured.
	Build(ctx context.Context) (*models.Snapshot, error)
}

type siteService struct {
	cfg       SiteServiceConfig
	layout    config.Layout
	extractor ExtractorService
	fixtures  brackets.FixtureGenerator
	open      WorkbookOpener
	publisher *storage.Publisher
	now       func() time.Time
	logger    *slog.Logger
}

// NewSiteService wires the build pipeline. publisher may be nil.
func NewSiteService(
	cfg SiteServiceConfig,
	layout config.Layout,
	open WorkbookOpener,
	publisher *storage.Publisher,
	logger *slog.Logger,
) SiteService {
	return &siteService{
		cfg:       cfg,
		layout:    layout,
		extractor: NewExtractorService(layout, logger),
		fixtures:  brackets.NewRoundRobinGenerator(),
		open:      open,
		publisher: publisher,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *siteService) Generate(ctx context.Context) (*models.Snapshot, []storage.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	reader, err := s.open(s.cfg.ExcelPath)
	if err != nil {
		return nil, nil, err
	}
	defer reader.Close()

	extraction, err := s.extractor.Extract(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to extract %s: %w", s.cfg.ExcelPath, err)
	}
	s.logExtraction(extraction.Report)

	snapshot, err := BuildSnapshot(SnapshotInput{
		Layout:     s.layout,
		Extraction: extraction,
		ExcelFile:  s.cfg.ExcelPath,
		Title:      s.cfg.Title,
		Now:        s.now(),
		Fixtures:   s.fixtures,
	})
	if err != nil {
		return nil, nil, err
	}

	artifacts, err := s.render(snapshot)
	if err != nil {
		return nil, nil, err
	}
	return snapshot, artifacts, nil
}

func (s *siteService) Build(ctx context.Context) (*models.Snapshot, error) {
	start := time.Now()
	snapshot, err := s.build(ctx)
	metrics.BuildDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BuildsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.BuildsTotal.WithLabelValues("ok").Inc()
	return snapshot, nil
}

func (s *siteService) build(ctx context.Context) (*models.Snapshot, error) {
	snapshot, artifacts, err := s.Generate(ctx)
	if err != nil {
		return nil, err
	}

	if err := writeArtifacts(s.cfg.OutputDir, artifacts); err != nil {
		return nil, err
	}
	s.logger.Info("site written",
		slog.String("dir", s.cfg.OutputDir),
		slog.Int("files", len(artifacts)),
		slog.Int("matches", len(snapshot.Matches)))

	if s.publisher != nil {
		if _, err := s.publisher.Publish(ctx, artifacts); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPublishFailed, err)
		}
	}
	return snapshot, nil
}

func (s *siteService) render(snapshot *models.Snapshot) ([]storage.Artifact, error) {
	page, err := render.HTML(snapshot, render.Options{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	doc, err := render.JSON(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	artifacts := []storage.Artifact{
		{Name: render.SnapshotFile, Body: doc},
		{Name: render.IndexFile, Body: page},
	}
	if s.cfg.MarkdownEnabled {
		md, err := render.Markdown(snapshot)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
		}
		artifacts = append(artifacts, storage.Artifact{Name: render.MarkdownFile, Body: md})
	}
	return artifacts, nil
}

func (s *siteService) logExtraction(report models.ExtractionReport) {
	for reason, n := range report.Skipped {
		// Empty regions are the unplayed schedule, not data loss.
		if reason == models.SkipEmpty {
			continue
		}
		metrics.RowsSkippedTotal.WithLabelValues(string(reason)).Add(float64(n))
	}
	metrics.MatchesExtracted.Set(float64(report.MatchesFound))

	incomplete := report.SkippedTotal() - report.Skipped[models.SkipEmpty]
	attrs := []any{
		slog.Int("regions", report.RegionsScanned),
		slog.Int("matches", report.MatchesFound),
		slog.Int("empty", report.Skipped[models.SkipEmpty]),
		slog.Int("incomplete", incomplete),
	}
	if incomplete > 0 {
		s.logger.Warn("liguilla rows skipped", append(attrs,
			slog.Int(string(models.SkipMissingTeam), report.Skipped[models.SkipMissingTeam]),
			slog.Int(string(models.SkipMissingScore), report.Skipped[models.SkipMissingScore]),
			slog.Int(string(models.SkipNonNumeric), report.Skipped[models.SkipNonNumeric]))...)
		return
	}
	s.logger.Info("liguilla extracted", attrs...)
}

// writeArtifacts writes every file next to its final name first and renames
// afterwards, so a failure leaves previous outputs in place.
func writeArtifacts(dir string, artifacts []storage.Artifact) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	tmpPaths := make([]string, 0, len(artifacts))
	cleanup := func() {
		for _, p := range tmpPaths {
			_ = os.Remove(p)
		}
	}
	for _, a := range artifacts {
		tmp := filepath.Join(dir, "."+a.Name+".tmp")
		if err := os.WriteFile(tmp, a.Body, 0o644); err != nil {
			cleanup()
			return fmt.Errorf("%w: %s: %w", ErrWriteFailed, a.Name, err)
		}
		tmpPaths = append(tmpPaths, tmp)
	}

	var errs []error
	for i, a := range artifacts {
		if err := os.Rename(tmpPaths[i], filepath.Join(dir, a.Name)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a.Name, err))
		}
	}
	if len(errs) > 0 {
		cleanup()
		return fmt.Errorf("%w: %w", ErrWriteFailed, errors.Join(errs...))
	}
	return nil
}
