package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	// Source workbook and generated site
	ExcelPath       string `envconfig:"EXCEL_PATH" default:"data/Mini Torneo Navidad 2025.xlsm"`
	OutputDir       string `envconfig:"OUTPUT_DIR" default:"site"`
	LayoutFile      string `envconfig:"LAYOUT_FILE" default:""`
	TournamentTitle string `envconfig:"TOURNAMENT_TITLE" default:"Mini Torneo Navidad 2025"`
	MarkdownEnabled bool   `envconfig:"MARKDOWN_ENABLED" default:"false"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Cloudflare R2 publishing
	PublishEnabled    bool   `envconfig:"PUBLISH_ENABLED" default:"false"`
	PublishPrefix     string `envconfig:"PUBLISH_PREFIX" default:""`
	R2AccountID       string `envconfig:"R2_ACCOUNT_ID"`
	R2AccessKeyID     string `envconfig:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `envconfig:"R2_SECRET_ACCESS_KEY"`
	R2BucketName      string `envconfig:"R2_BUCKET_NAME"`
	R2PublicBaseURL   string `envconfig:"R2_PUBLIC_BASE_URL"`

	// Local preview server
	PreviewEnabled        bool     `envconfig:"PREVIEW_ENABLED" default:"false"`
	PreviewPort           int      `envconfig:"PREVIEW_PORT" default:"8080"`
	PreviewAllowedOrigins []string `envconfig:"PREVIEW_ALLOWED_ORIGINS" default:"*"`
	RebuildSchedule       string   `envconfig:"REBUILD_SCHEDULE" default:"@every 30s"`
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.ExcelPath) == "" {
		return errors.New("EXCEL_PATH must not be empty")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("OUTPUT_DIR must not be empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	if c.PublishEnabled {
		missing := make([]string, 0, 5)
		for name, value := range map[string]string{
			"R2_ACCOUNT_ID":        c.R2AccountID,
			"R2_ACCESS_KEY_ID":     c.R2AccessKeyID,
			"R2_SECRET_ACCESS_KEY": c.R2SecretAccessKey,
			"R2_BUCKET_NAME":       c.R2BucketName,
			"R2_PUBLIC_BASE_URL":   c.R2PublicBaseURL,
		} {
			if value == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return fmt.Errorf("publishing enabled but %s not set", strings.Join(missing, ", "))
		}
	}

	if c.PreviewEnabled {
		if c.PreviewPort <= 0 || c.PreviewPort > 65535 {
			return fmt.Errorf("PREVIEW_PORT must be between 1 and 65535, got %d", c.PreviewPort)
		}
		if strings.TrimSpace(c.RebuildSchedule) == "" {
			return errors.New("REBUILD_SCHEDULE must not be empty when preview is enabled")
		}
	}

	return nil
}

// SlogLevel maps LOG_LEVEL onto a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown LOG_LEVEL %q", c.LogLevel)
	}
}
