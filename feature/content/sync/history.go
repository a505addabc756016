package sync

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Run statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Run is one row of the sync history.
type Run struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	StartedAt  time.Time `gorm:"index" json:"startedAt"`
	DurationMs int64     `json:"durationMs"`
	Status     string    `gorm:"size:16" json:"status"`
	Error      string    `gorm:"type:text" json:"error,omitempty"`
	Products   int       `json:"products"`
	Tours      int       `json:"tours"`
	Donations  int       `json:"donations"`
	Posts      int       `json:"posts"`
}

// TableName overrides the GORM table name.
func (Run) TableName() string {
	return "sync_runs"
}

// Recorder stores and lists sync runs.
type Recorder interface {
	Record(ctx context.Context, run *Run) error
	Recent(ctx context.Context, limit int) ([]Run, error)
}

// GormRecorder is a Recorder backed by GORM.
type GormRecorder struct {
	db *gorm.DB
}

// NewGormRecorder migrates the history table and returns a recorder.
func NewGormRecorder(db *gorm.DB) (*GormRecorder, error) {
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sync_runs: %w", err)
	}
	return &GormRecorder{db: db}, nil
}

// Record inserts a run.
func (r *GormRecorder) Record(ctx context.Context, run *Run) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to insert sync run %s: %w", run.ID, err)
	}
	return nil
}

// Recent returns the latest runs, newest first.
func (r *GormRecorder) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []Run
	if err := r.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}
	return runs, nil
}
