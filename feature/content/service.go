package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	contentsync "content-sync/feature/content/sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrHistoryDisabled is returned when run history is requested without a history store.
var ErrHistoryDisabled = errors.New("sync history is not configured")

// Runner performs one sync run.
type Runner interface {
	Run(ctx context.Context) (*contentsync.Result, error)
}

// Service triggers rebuilds and exposes their history.
type Service struct {
	runner     Runner
	history    contentsync.Recorder
	deployHook string
	httpClient *http.Client
	logger     *zap.Logger
	group      singleflight.Group
}

// NewService creates a new content service. history may be nil.
func NewService(runner Runner, history contentsync.Recorder, deployHook string, logger *zap.Logger) *Service {
	return &Service{
		runner:     runner,
		history:    history,
		deployHook: deployHook,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// Rebuild runs a sync. Callers arriving while a run is in flight share its result,
// so two runs never write the snapshot at the same time.
func (s *Service) Rebuild(ctx context.Context) (*contentsync.Result, error) {
	v, err, shared := s.group.Do("rebuild", func() (interface{}, error) {
		return s.runner.Run(ctx)
	})
	if shared {
		s.logger.Debug("Joined in-flight rebuild")
	}
	if err != nil {
		return nil, err
	}
	return v.(*contentsync.Result), nil
}

// TriggerDeploy POSTs to the configured deploy hook.
// It reports false without error when no hook is configured.
func (s *Service) TriggerDeploy(ctx context.Context) (bool, error) {
	if s.deployHook == "" {
		return false, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.deployHook, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build deploy hook request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("deploy hook failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("deploy hook failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return true, nil
}

// RecentRuns returns the latest sync runs, newest first.
func (s *Service) RecentRuns(ctx context.Context, limit int) ([]contentsync.Run, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.Recent(ctx, limit)
}
