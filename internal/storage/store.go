package storage

import (
	"context"

	"cgpbench/internal/model"
)

// Store persists run records so results collected across seeds can be
// aggregated later. The evaluation core never touches a store.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, record model.RunRecord) error
	GetRun(ctx context.Context, runID string) (model.RunRecord, bool, error)
	ListRuns(ctx context.Context, problem string) ([]model.RunRecord, error)
}
