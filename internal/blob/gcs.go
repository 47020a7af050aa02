package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/obratech/obras-tracker/internal/common"
)

// Store is the audit copy sink for uploaded budget documents.
type Store interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	PublicURL(key string) string
	Close() error
}

type gcsStore struct {
	client *storage.Client
	cfg    common.BlobConfig
	logger *slog.Logger
}

func NewGCSStore(ctx context.Context, cfg common.BlobConfig, logger *slog.Logger, opts ...option.ClientOption) (Store, error) {
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}
	return &gcsStore{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

func (s *gcsStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.UploadTimeout)
	defer cancel()

	w := s.client.Bucket(s.cfg.Bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return fmt.Errorf("writing object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing writer for %s: %w", key, err)
	}

	s.logger.Debug("stored document blob", "bucket", s.cfg.Bucket, "key", key, "bytes", len(data))
	return nil
}

func (s *gcsStore) PublicURL(key string) string {
	if s.cfg.PublicBaseURL != "" {
		return fmt.Sprintf("https://%s/%s", strings.TrimSuffix(s.cfg.PublicBaseURL, "/"), key)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.cfg.Bucket, key)
}

func (s *gcsStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
