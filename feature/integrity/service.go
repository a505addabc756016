package integrity

import (
	"context"
	"errors"

	"content-sync/core/storage"
	"content-sync/feature/integrity/checks"

	"go.uber.org/zap"
)

// ErrPublishingDisabled is returned when the published snapshot is checked without a bucket.
var ErrPublishingDisabled = errors.New("snapshot publishing is not configured")

// Service handles snapshot integrity checks.
type Service struct {
	dir    string
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewService creates a new integrity service. client is nil when publishing is off.
func NewService(dir string, client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	return &Service{
		dir:    dir,
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// CheckSnapshot inspects the local snapshot documents.
func (s *Service) CheckSnapshot() ([]checks.FileReport, error) {
	return checks.CheckSnapshot(s.dir)
}

// CheckPublished inspects the published snapshot objects.
func (s *Service) CheckPublished(ctx context.Context) ([]checks.ObjectReport, error) {
	if s.client == nil {
		return nil, ErrPublishingDisabled
	}
	return checks.CheckPublished(ctx, s.client, s.bucket, s.prefix)
}

// Healthy reports whether every local document is present and valid.
func Healthy(reports []checks.FileReport) bool {
	for _, r := range reports {
		if !r.Present || !r.Valid {
			return false
		}
	}
	return true
}
