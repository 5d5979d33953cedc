package priority

import (
	"context"

	"univio/internal/model"
)

// UseCase scores tasks. None of its operations fail: malformed input degrades
// to documented defaults.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Calculate scores a single task against the current time.
	Calculate(ctx context.Context, task model.Task) Result

	// EstimateTime estimates hours needed to finish a task.
	EstimateTime(ctx context.Context, task model.Task) Estimate

	// BestTimeToWork suggests a time-of-day slot based only on the current hour.
	BestTimeToWork(ctx context.Context) string

	// Rank scores all open tasks and returns the highest first.
	Rank(ctx context.Context, input RankInput) RankOutput
}
