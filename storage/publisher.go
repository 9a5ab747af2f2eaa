package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/tournament-site/metrics"
)

// Publisher uploads generated artifacts under a key prefix.
type Publisher struct {
	uploader FileUploader
	prefix   string
	logger   *slog.Logger
}

func NewPublisher(uploader FileUploader, prefix string, logger *slog.Logger) *Publisher {
	return &Publisher{uploader: uploader, prefix: prefix, logger: logger}
}

// Publish uploads every artifact in order and stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, artifacts []Artifact) ([]*UploadResult, error) {
	results := make([]*UploadResult, 0, len(artifacts))
	for _, a := range artifacts {
		key := ObjectKey(p.prefix, a.Name)
		res, err := p.uploader.Upload(ctx, key, a.ContentType(), bytes.NewReader(a.Body))
		if err != nil {
			metrics.UploadsTotal.WithLabelValues(a.Name, "error").Inc()
			return results, fmt.Errorf("upload %s: %w", a.Name, err)
		}
		metrics.UploadsTotal.WithLabelValues(a.Name, "ok").Inc()
		p.logger.Info("artifact published",
			slog.String("key", res.Key),
			slog.String("location", res.Location),
			slog.Int("bytes", len(a.Body)))
		results = append(results, res)
	}
	return results, nil
}
