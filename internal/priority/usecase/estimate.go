package usecase

import (
	"context"
	"fmt"
	"time"

	"univio/internal/model"
	"univio/internal/priority"
)

// EstimateTimeToComplete derives a rough hour count from the same complexity and
// grade-weight classification the scorer uses.
func EstimateTimeToComplete(t model.Task) priority.Estimate {
	complexity := estimateComplexity(t.Description, t.Title)
	weight := estimateGradeWeight(t.Title)

	hours := 2
	switch {
	case complexity >= 0.8:
		hours = 6
	case complexity >= 0.6:
		hours = 4
	case complexity >= 0.4:
		hours = 3
	}

	switch {
	case weight >= 0.9:
		hours += 2
	case weight >= 0.7:
		hours++
	}

	if hours >= multiDayHours {
		return priority.Estimate{Hours: hours, MultiDay: true, Label: fmt.Sprintf(estimateLabelMultiDay, hours)}
	}
	return priority.Estimate{Hours: hours, Label: fmt.Sprintf(estimateLabel, hours)}
}

// BestTimeToWork picks a time-of-day slot from the hour of now only.
func BestTimeToWork(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour >= 6 && hour < 12:
		return bestTimeMorning
	case hour >= 12 && hour < 18:
		return bestTimeAfternoon
	default:
		return bestTimeTomorrowMorning
	}
}

// EstimateTime estimates effort for task.
func (uc *implUseCase) EstimateTime(ctx context.Context, task model.Task) priority.Estimate {
	est := EstimateTimeToComplete(task)
	uc.l.Debugf(ctx, "%s: title=%q hours=%d", logPrefixEstimate, task.Title, est.Hours)
	return est
}

// BestTimeToWork suggests a slot for the current hour.
func (uc *implUseCase) BestTimeToWork(ctx context.Context) string {
	return BestTimeToWork(uc.clock.Now())
}
