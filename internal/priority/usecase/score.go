package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"univio/internal/model"
	"univio/internal/priority"
	"univio/pkg/datemath"
)

// deadlineStep maps "due within maxDays" to a score. phrase is empty for steps
// that do not contribute to the reason.
type deadlineStep struct {
	maxDays int
	score   float64
	phrase  string
}

var deadlineSteps = []deadlineStep{
	{maxDays: 1, score: 40, phrase: reasonDeadlineDay},
	{maxDays: 3, score: 35, phrase: reasonDeadlineSoon},
	{maxDays: 7, score: 25, phrase: reasonDeadlineWeek},
	{maxDays: 14, score: 15},
}

type recommendationRule struct {
	tier  model.Priority
	match func(days int, complexity float64) bool
	text  string
}

func always(int, float64) bool { return true }

var recommendationRules = []recommendationRule{
	{tier: model.PriorityHigh, match: func(d int, _ float64) bool { return d <= 1 }, text: recommendNow},
	{tier: model.PriorityHigh, match: func(_ int, c float64) bool { return c >= highComplexityMin }, text: recommendStartToday},
	{tier: model.PriorityHigh, match: always, text: recommendPrioritize},
	{tier: model.PriorityMedium, match: func(d int, _ float64) bool { return d <= 3 }, text: recommendPlanSoon},
	{tier: model.PriorityMedium, match: always, text: recommendThisWeek},
	{tier: model.PriorityLow, match: always, text: recommendNextWeek},
}

// Score computes the priority of t as seen at now. The due date is read at
// midnight in now's location. It never fails: an unparseable due date scores as
// a far-away deadline.
func Score(t model.Task, now time.Time) priority.Result {
	days, ok := datemath.DaysUntil(t.DueDate, now)
	if !ok {
		days = priority.NoDeadline
	}

	deadline := deadlineScore(days)
	weight := estimateGradeWeight(t.Title)
	complexity := estimateComplexity(t.Description, t.Title)

	gradeScore := weight * gradeWeightPoints
	complexityScore := complexity * complexityPoints
	total := deadline + gradeScore + complexityScore

	tier := tierFor(total)

	return priority.Result{
		Score: int(math.Round(total)),
		Tier:  tier,
		Breakdown: priority.Breakdown{
			DeadlineScore:    int(math.Round(deadline)),
			GradeWeightScore: int(math.Round(gradeScore)),
			ComplexityScore:  int(math.Round(complexityScore)),
		},
		Reason:         buildReason(days, complexity, weight),
		Recommendation: recommend(tier, days, complexity),
		DaysUntilDue:   days,
		GradeWeight:    weight,
		Complexity:     complexity,
	}
}

func deadlineScore(days int) float64 {
	for _, s := range deadlineSteps {
		if days <= s.maxDays {
			return s.score
		}
	}
	return farDeadlineScore
}

func tierFor(total float64) model.Priority {
	switch {
	case total >= highTierMin:
		return model.PriorityHigh
	case total >= mediumTierMin:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

func buildReason(days int, complexity, weight float64) string {
	var reasons []string

	for _, s := range deadlineSteps {
		if days <= s.maxDays {
			if s.phrase != "" {
				reasons = append(reasons, s.phrase)
			}
			break
		}
	}

	switch {
	case complexity >= highComplexityMin:
		reasons = append(reasons, reasonComplexityHigh)
	case complexity >= mediumComplexityMin:
		reasons = append(reasons, reasonComplexityMed)
	}

	switch {
	case weight >= veryImportantMin:
		reasons = append(reasons, reasonGradeVeryImport)
	case weight >= quiteImportantMin:
		reasons = append(reasons, reasonGradeQuite)
	}

	if len(reasons) == 0 {
		return reasonStandard
	}
	return strings.Join(reasons, reasonSeparator)
}

func recommend(tier model.Priority, days int, complexity float64) string {
	for _, r := range recommendationRules {
		if r.tier == tier && r.match(days, complexity) {
			return r.text
		}
	}
	return recommendNextWeek
}

// Calculate scores task against the injected clock.
func (uc *implUseCase) Calculate(ctx context.Context, task model.Task) priority.Result {
	res := Score(task, uc.clock.Now())
	uc.l.Debugf(ctx, "%s: title=%q score=%d tier=%s days=%d weight=%.2f complexity=%.2f",
		logPrefixCalculate, task.Title, res.Score, res.Tier, res.DaysUntilDue, res.GradeWeight, res.Complexity)
	return res
}
