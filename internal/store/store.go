// Package store persists merge-run history and exported lead snapshots.
package store

import (
	"context"

	"github.com/gulfbridge/leads-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for the merge pipeline.
type Store interface {
	// Runs
	CreateRun(ctx context.Context) (*model.Run, error)
	CompleteRun(ctx context.Context, runID string, result *model.RunResult) error
	FailRun(ctx context.Context, runID string, cause string) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	// Leads snapshots
	InsertLeads(ctx context.Context, runID string, rows []model.Record) (int64, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
