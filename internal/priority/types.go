package priority

import (
	"math"
	"time"

	"univio/internal/model"
)

// NoDeadline is reported as DaysUntilDue when the due date cannot be parsed.
// It is larger than every deadline threshold, so such tasks score as far away.
const NoDeadline = math.MaxInt32

// Breakdown holds the individually rounded component scores.
type Breakdown struct {
	DeadlineScore    int
	GradeWeightScore int
	ComplexityScore  int
}

// Result is the priority verdict for one task.
type Result struct {
	Score          int
	Tier           model.Priority
	Breakdown      Breakdown
	Reason         string
	Recommendation string

	// Raw factors behind the breakdown.
	DaysUntilDue int
	GradeWeight  float64
	Complexity   float64
}

// Estimate is a rough effort estimate for a task.
type Estimate struct {
	Hours    int
	MultiDay bool
	Label    string
}

// RankInput is the input for ranking a task list.
type RankInput struct {
	Tasks []model.Task
	Limit int // <= 0 uses the configured default
}

// RankedTask is one entry of a ranking.
type RankedTask struct {
	Task     model.Task
	Result   Result
	Estimate Estimate
}

// RankOutput is the result of ranking.
type RankOutput struct {
	Tasks    []RankedTask
	Open     int // tasks considered (not done) before the limit was applied
	ScoredAt time.Time
}
