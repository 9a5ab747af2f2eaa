package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/Dosada05/tournament-site/brackets"
	"github.com/Dosada05/tournament-site/services"
	"github.com/robfig/cron/v3"
)

// Notifier receives rebuild events; *brackets.Hub in production.
type Notifier interface {
	Publish(ctx context.Context, message brackets.WebSocketMessage) error
}

// Scheduler rebuilds the site whenever the workbook changes on disk. The
// check runs on a cron schedule.
type Scheduler struct {
	schedule  string
	excelPath string
	site      services.SiteService
	store     *services.SnapshotStore
	notifier  Notifier
	cron      *cron.Cron
	logger    *slog.Logger

	mu      sync.Mutex
	lastMod time.Time
}

func New(schedule, excelPath string, site services.SiteService, store *services.SnapshotStore, notifier Notifier, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		schedule:  schedule,
		excelPath: excelPath,
		site:      site,
		store:     store,
		notifier:  notifier,
		cron:      cron.New(),
		logger:    logger,
	}
}

// Start schedules the workbook check. Jobs run until Stop.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.RunOnce(ctx); err != nil {
			s.logger.Error("scheduled rebuild failed", slog.Any("error", err))
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule rebuild %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.logger.Info("rebuild scheduler started", slog.String("schedule", s.schedule))
	return nil
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("rebuild scheduler stopped")
}

// MarkBuilt records the workbook modification time of a build done outside
// the scheduler.
func (s *Scheduler) MarkBuilt() error {
	info, err := os.Stat(s.excelPath)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.lastMod = info.ModTime()
	s.mu.Unlock()
	return nil
}

// RunOnce rebuilds when the workbook changed since the last successful build.
// The previous snapshot stays in the store when the rebuild fails.
func (s *Scheduler) RunOnce(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.excelPath)
	if err != nil {
		return false, fmt.Errorf("failed to stat workbook: %w", err)
	}
	if info.ModTime().Equal(s.lastMod) {
		return false, nil
	}

	s.logger.Info("workbook changed, rebuilding", slog.Time("modified", info.ModTime()))
	snapshot, err := s.site.Build(ctx)
	if err != nil {
		s.notify(ctx, brackets.WebSocketMessage{
			Type:    brackets.MessageBuildFailed,
			Payload: map[string]string{"error": err.Error()},
		})
		return false, err
	}

	s.lastMod = info.ModTime()
	s.store.Set(snapshot)
	s.notify(ctx, brackets.WebSocketMessage{
		Type:    brackets.MessageSnapshotUpdated,
		Payload: map[string]string{"updated_at": snapshot.UpdatedAt},
	})
	return true, nil
}

func (s *Scheduler) notify(ctx context.Context, msg brackets.WebSocketMessage) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, msg); err != nil {
		s.logger.Warn("failed to notify preview clients", slog.Any("error", err))
	}
}
