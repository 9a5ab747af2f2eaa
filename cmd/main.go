package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/tournament-site/brackets"
	"github.com/Dosada05/tournament-site/config"
	"github.com/Dosada05/tournament-site/handlers"
	"github.com/Dosada05/tournament-site/models"
	"github.com/Dosada05/tournament-site/repositories"
	api "github.com/Dosada05/tournament-site/routes"
	"github.com/Dosada05/tournament-site/scheduler"
	"github.com/Dosada05/tournament-site/services"
	"github.com/Dosada05/tournament-site/storage"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	level, _ := cfg.SlogLevel()
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	logger.Info("configuration loaded",
		slog.String("excel_path", cfg.ExcelPath),
		slog.String("output_dir", cfg.OutputDir),
		slog.Bool("publish", cfg.PublishEnabled),
		slog.Bool("preview", cfg.PreviewEnabled))

	layout, err := config.LoadLayout(cfg.LayoutFile)
	if err != nil {
		logger.Error("failed to load workbook layout", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var publisher *storage.Publisher
	if cfg.PublishEnabled {
		uploader, err := storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		publisher = storage.NewPublisher(uploader, cfg.PublishPrefix, logger)
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2BucketName))
	}

	siteService := services.NewSiteService(
		services.SiteServiceConfig{
			ExcelPath:       cfg.ExcelPath,
			OutputDir:       cfg.OutputDir,
			Title:           cfg.TournamentTitle,
			MarkdownEnabled: cfg.MarkdownEnabled,
		},
		layout,
		repositories.OpenWorkbook,
		publisher,
		logger,
	)

	snapshot, err := siteService.Build(ctx)
	if err != nil {
		logger.Error("site build failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("site build completed",
		slog.String("updated_at", snapshot.UpdatedAt),
		slog.Int("matches", len(snapshot.Matches)),
		slog.Int("pending", len(snapshot.Pending)))

	if !cfg.PreviewEnabled {
		return
	}

	if err := runPreview(ctx, cfg, siteService, snapshot, logger); err != nil {
		logger.Error("preview server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("application exited")
}

func runPreview(ctx context.Context, cfg *config.Config, siteService services.SiteService, initial *models.Snapshot, logger *slog.Logger) error {
	store := services.NewSnapshotStore()
	store.Set(initial)

	wsHub := brackets.NewHub(logger)
	sched := scheduler.New(cfg.RebuildSchedule, cfg.ExcelPath, siteService, store, wsHub, logger)
	if err := sched.MarkBuilt(); err != nil {
		return fmt.Errorf("failed to stat workbook: %w", err)
	}

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		handlers.NewSiteHandler(store, logger),
		handlers.NewWebSocketHandler(wsHub, logger),
		cfg.PreviewAllowedOrigins,
		logger,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.PreviewPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return wsHub.Run(gCtx)
	})

	g.Go(func() error {
		if err := sched.Start(gCtx); err != nil {
			return err
		}
		<-gCtx.Done()
		sched.Stop()
		return nil
	})

	g.Go(func() error {
		logger.Info("starting preview server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down preview server", slog.Duration("timeout", shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			return server.Close()
		}
		return nil
	})

	return g.Wait()
}
