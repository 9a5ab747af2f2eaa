package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Dosada05/tournament-site/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingUploader struct {
	uploads map[string]string
	types   map[string]string
	failOn  string
}

func newRecordingUploader() *recordingUploader {
	return &recordingUploader{uploads: map[string]string{}, types: map[string]string{}}
}

func (u *recordingUploader) Upload(_ context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error) {
	if key == u.failOn {
		return nil, errors.New("access denied")
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	u.uploads[key] = string(body)
	u.types[key] = contentType
	return &UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *recordingUploader) GetPublicURL(key string) string {
	return PublicURL("https://pub.example.r2.dev", key)
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "index.html", ObjectKey("", "index.html"))
	assert.Equal(t, "index.html", ObjectKey("/", "index.html"))
	assert.Equal(t, "navidad-2025/index.html", ObjectKey("/navidad-2025/", "index.html"))
	assert.Equal(t, "torneos/navidad/standings.json", ObjectKey("torneos/navidad", "standings.json"))
}

func TestArtifact_ContentType(t *testing.T) {
	assert.Equal(t, "text/html; charset=utf-8", Artifact{Name: "index.html"}.ContentType())
	assert.Equal(t, "application/json; charset=utf-8", Artifact{Name: "standings.JSON"}.ContentType())
	assert.Equal(t, "text/markdown; charset=utf-8", Artifact{Name: "standings.md"}.ContentType())
	assert.Equal(t, "application/octet-stream", Artifact{Name: "logo"}.ContentType())
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://pub.example.r2.dev/index.html", PublicURL("https://pub.example.r2.dev", "index.html"))
	assert.Equal(t, "https://cdn.example.com/site/navidad/index.html", PublicURL("https://cdn.example.com/site", "/navidad/index.html"))
	assert.Empty(t, PublicURL("", "index.html"))
	assert.Empty(t, PublicURL("https://cdn.example.com", ""))
}

func TestPublisher_Publish(t *testing.T) {
	uploader := newRecordingUploader()
	publisher := NewPublisher(uploader, "navidad-2025", slog.New(slog.NewTextHandler(io.Discard, nil)))
	before := testutil.ToFloat64(metrics.UploadsTotal.WithLabelValues("index.html", "ok"))

	results, err := publisher.Publish(context.Background(), []Artifact{
		{Name: "standings.json", Body: []byte(`{"updated_at":"2025-12-24 18:30:05"}`)},
		{Name: "index.html", Body: []byte("<html></html>")},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "https://pub.example.r2.dev/navidad-2025/index.html", results[1].Location)
	assert.Equal(t, "<html></html>", uploader.uploads["navidad-2025/index.html"])
	assert.Equal(t, "application/json; charset=utf-8", uploader.types["navidad-2025/standings.json"])
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.UploadsTotal.WithLabelValues("index.html", "ok")))
}

func TestPublisher_StopsAtFirstFailure(t *testing.T) {
	uploader := newRecordingUploader()
	uploader.failOn = "standings.json"
	publisher := NewPublisher(uploader, "", slog.New(slog.NewTextHandler(io.Discard, nil)))

	results, err := publisher.Publish(context.Background(), []Artifact{
		{Name: "standings.json", Body: []byte("{}")},
		{Name: "index.html", Body: []byte("<html></html>")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "standings.json")
	assert.Empty(t, results)
	assert.NotContains(t, uploader.uploads, "index.html")
}

func TestNewCloudflareR2Uploader_RequiresConfig(t *testing.T) {
	_, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{
		AccountID:  "account",
		BucketName: "bucket",
	})
	assert.Error(t, err)
}
