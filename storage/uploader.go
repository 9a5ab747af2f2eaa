package storage

import (
	"context"
	"io"
	"path"
	"strings"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	GetPublicURL(key string) string
}

// Artifact is one generated file of the site.
type Artifact struct {
	Name string
	Body []byte
}

// ContentType picks the upload content type from the artifact extension.
func (a Artifact) ContentType() string {
	switch strings.ToLower(path.Ext(a.Name)) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".json":
		return "application/json; charset=utf-8"
	case ".md":
		return "text/markdown; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// ObjectKey joins prefix and name into a bucket key without a leading slash.
func ObjectKey(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
