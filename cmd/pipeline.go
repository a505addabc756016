package cmd

import (
	"context"
	"fmt"

	"content-sync/core/config"
	"content-sync/core/contentful"
	"content-sync/core/database"
	"content-sync/core/snapshot"
	"content-sync/core/storage"
	contentsync "content-sync/feature/content/sync"

	"go.uber.org/zap"
)

// pipeline holds the wired sync orchestrator and its optional collaborators.
type pipeline struct {
	syncer *contentsync.Syncer
	// history is nil when the database is disabled or unreachable.
	history contentsync.Recorder
	// store is nil when publishing is off.
	store storage.Client
}

// newStore returns the storage client when publishing is on, or nil.
func newStore(cfg *config.Config) (storage.Client, error) {
	if !cfg.Snapshot.Publish {
		return nil, nil
	}
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return store, nil
}

// newPipeline wires the orchestrator from configuration.
func newPipeline(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*pipeline, error) {
	client, err := contentful.NewClient(cfg.Contentful)
	if err != nil {
		return nil, err
	}

	p := &pipeline{}
	opts := []contentsync.Option{
		contentsync.WithLogger(logg),
		contentsync.WithLimit(cfg.Contentful.Limit),
	}

	p.store, err = newStore(cfg)
	if err != nil {
		return nil, err
	}
	if p.store != nil {
		bucket := snapshot.NewBucketWriter(p.store, cfg.Storage.Bucket, cfg.Snapshot.Prefix)
		if err := bucket.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		opts = append(opts, contentsync.WithPublisher(bucket))
		logg.Info("Publishing snapshots to bucket",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("prefix", cfg.Snapshot.Prefix))
	}

	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else if recorder, err := contentsync.NewGormRecorder(db); err != nil {
			logg.Warn("Sync history unavailable", zap.Error(err))
		} else {
			p.history = recorder
			opts = append(opts, contentsync.WithHistory(recorder))
			logg.Info("Recording sync history", zap.String("driver", cfg.Database.Driver))
		}
	}

	p.syncer = contentsync.New(client, cfg.Contentful.ContentTypes, snapshot.NewFileWriter(cfg.Snapshot.Dir), opts...)
	return p, nil
}
