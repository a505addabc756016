package sync

import (
	"context"
	"fmt"
	"time"

	"content-sync/core/contentful"
	"content-sync/core/snapshot"
	"content-sync/feature/content/models"
	"content-sync/feature/content/transform"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Fetcher retrieves the raw payload of one content type.
type Fetcher interface {
	Fetch(ctx context.Context, q contentful.Query) (*contentful.Payload, error)
}

// Result describes a completed sync run.
type Result struct {
	RunID      string           `json:"runId"`
	Counts     map[string]int   `json:"counts"`
	DurationMs int64            `json:"durationMs"`
	Snapshot   *models.Snapshot `json:"-"`
}

// Syncer fetches every content category, transforms it and persists the snapshot.
// A Syncer is not safe for concurrent runs against the same output location;
// callers serialize Run.
type Syncer struct {
	fetcher    Fetcher
	types      contentful.ContentTypes
	limit      int
	writer     snapshot.Writer
	publishers []snapshot.Writer
	history    Recorder
	logger     *zap.Logger
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Syncer) { s.logger = l }
}

// WithHistory records every run, successful or not.
func WithHistory(r Recorder) Option {
	return func(s *Syncer) { s.history = r }
}

// WithPublisher adds a writer that receives the snapshot after the primary writer.
func WithPublisher(w snapshot.Writer) Option {
	return func(s *Syncer) { s.publishers = append(s.publishers, w) }
}

// WithLimit sets the page size requested per content type.
func WithLimit(limit int) Option {
	return func(s *Syncer) { s.limit = limit }
}

// New creates a Syncer reading the given content types and persisting through writer.
func New(fetcher Fetcher, types contentful.ContentTypes, writer snapshot.Writer, opts ...Option) *Syncer {
	s := &Syncer{
		fetcher: fetcher,
		types:   types,
		writer:  writer,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type job struct {
	category string
	query    contentful.Query
	dest     **contentful.Payload
}

// Run performs one full, stateless resync.
// All four categories are fetched concurrently; the first failure aborts the run and
// nothing is written. On success the snapshot is persisted before Run returns.
func (s *Syncer) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	started := time.Now()
	l := s.logger.With(zap.String("run_id", runID))
	l.Info("Sync started")

	snap, err := s.run(ctx, l)
	duration := time.Since(started)

	s.record(ctx, l, runID, started, duration, snap, err)

	if err != nil {
		l.Error("Sync failed", zap.Error(err), zap.Duration("duration", duration))
		return nil, err
	}

	counts := snap.Counts()
	l.Info("Sync completed",
		zap.Int(models.CategoryProducts, counts[models.CategoryProducts]),
		zap.Int(models.CategoryTours, counts[models.CategoryTours]),
		zap.Int(models.CategoryDonations, counts[models.CategoryDonations]),
		zap.Int(models.CategoryPosts, counts[models.CategoryPosts]),
		zap.Duration("duration", duration))

	return &Result{
		RunID:      runID,
		Counts:     counts,
		DurationMs: duration.Milliseconds(),
		Snapshot:   snap,
	}, nil
}

func (s *Syncer) run(ctx context.Context, l *zap.Logger) (*models.Snapshot, error) {
	var products, tours, donations, posts *contentful.Payload

	jobs := []job{
		{models.CategoryProducts, contentful.Query{ContentType: s.types.Products, Include: 2, Limit: s.limit}, &products},
		{models.CategoryTours, contentful.Query{ContentType: s.types.Tours, Include: 2, Limit: s.limit}, &tours},
		{models.CategoryDonations, contentful.Query{ContentType: s.types.Donations, Include: 0, Order: "fields.price", Limit: s.limit}, &donations},
		{models.CategoryPosts, contentful.Query{ContentType: s.types.Posts, Include: 2, Order: "-fields.publishedDate", Limit: s.limit}, &posts},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, j := range jobs {
		g.Go(func() error {
			payload, err := s.fetcher.Fetch(gctx, j.query)
			if err != nil {
				return fmt.Errorf("failed to fetch %s: %w", j.category, err)
			}
			l.Debug("Fetched category",
				zap.String("category", j.category),
				zap.Int("entries", len(payload.Items)),
				zap.Int("assets", len(payload.Assets)))
			*j.dest = payload
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &models.Snapshot{
		Products:  transform.Products(products),
		Tours:     transform.Tours(tours),
		Donations: transform.Donations(donations),
		Posts:     transform.Posts(posts),
	}

	if err := s.persist(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// persist encodes every category before writing any, then writes them concurrently.
func (s *Syncer) persist(ctx context.Context, snap *models.Snapshot) error {
	docs := snap.Documents()
	encoded := make(map[string][]byte, len(docs))
	for _, category := range models.Categories {
		data, err := snapshot.Encode(docs[category])
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", category, err)
		}
		encoded[category] = data
	}

	writers := append([]snapshot.Writer{s.writer}, s.publishers...)
	for _, w := range writers {
		g, gctx := errgroup.WithContext(ctx)
		for _, category := range models.Categories {
			g.Go(func() error {
				return w.Write(gctx, category, encoded[category])
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("failed to persist snapshot: %w", err)
		}
	}
	return nil
}

func (s *Syncer) record(ctx context.Context, l *zap.Logger, runID string, started time.Time, duration time.Duration, snap *models.Snapshot, runErr error) {
	if s.history == nil {
		return
	}

	run := &Run{
		ID:         runID,
		StartedAt:  started.UTC(),
		DurationMs: duration.Milliseconds(),
		Status:     StatusSuccess,
	}
	if runErr != nil {
		run.Status = StatusFailed
		run.Error = runErr.Error()
	}
	if snap != nil {
		run.Products = len(snap.Products)
		run.Tours = len(snap.Tours)
		run.Donations = len(snap.Donations)
		run.Posts = len(snap.Posts)
	}

	// History is auxiliary: a failed insert never fails the run.
	if err := s.history.Record(ctx, run); err != nil {
		l.Warn("Failed to record sync run", zap.Error(err))
	}
}
