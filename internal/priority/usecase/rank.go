package usecase

import (
	"context"
	"sort"
	"time"

	"univio/internal/model"
	"univio/internal/priority"
)

// RankTasks scores every task that is not done with the same now, orders them by
// score (highest first, ties keep input order) and keeps at most limit entries.
// limit <= 0 keeps all of them.
func RankTasks(tasks []model.Task, now time.Time, limit int) []priority.RankedTask {
	ranked := make([]priority.RankedTask, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == model.StatusDone {
			continue
		}
		ranked = append(ranked, priority.RankedTask{
			Task:     t,
			Result:   Score(t, now),
			Estimate: EstimateTimeToComplete(t),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.Score > ranked[j].Result.Score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Rank returns the highest-priority open tasks.
func (uc *implUseCase) Rank(ctx context.Context, input priority.RankInput) priority.RankOutput {
	limit := input.Limit
	if limit <= 0 {
		limit = uc.rankLimit
	}

	now := uc.clock.Now()
	all := RankTasks(input.Tasks, now, 0)
	open := len(all)
	if len(all) > limit {
		all = all[:limit]
	}

	uc.l.Infof(ctx, "%s: ranked %d open of %d tasks, returning %d", logPrefixRank, open, len(input.Tasks), len(all))

	return priority.RankOutput{
		Tasks:    all,
		Open:     open,
		ScoredAt: now,
	}
}
