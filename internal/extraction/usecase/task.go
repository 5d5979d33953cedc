package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"univio/internal/extraction"
	"univio/internal/model"
	"univio/pkg/datemath"
)

// ParseTaskFromText builds a task draft from free text. Undated text is due
// DefaultDueInDays after now. ok is false only when no title or due date could
// be derived, which the fallbacks make unreachable in practice.
func ParseTaskFromText(raw string, now time.Time) (extraction.ExtractedTask, bool) {
	cleaned := Preprocess(raw)
	e := ExtractEntities(cleaned)
	lower := strings.ToLower(cleaned)

	confidence := baseConfidence

	title, found := pickTitle(cleaned, e.Actions)
	if found {
		confidence += taskTitleBonus
	} else {
		title = fallbackTitle + firstOr(e.Courses, fallbackTitleTopic)
	}

	course := fallbackCourse
	if len(e.Courses) > 0 {
		course = e.Courses[0]
		confidence += taskCourseBonus
	}

	dueDate := datemath.WeekFromNow(now)
	if len(e.Dates) > 0 {
		dueDate = datemath.ParseDate(e.Dates[0], now)
		confidence += taskDateBonus
	}

	dueTime := datemath.DefaultDueTime
	if len(e.Times) > 0 {
		dueTime = datemath.NormalizeTime(e.Times[0])
		confidence += taskTimeBonus
	}

	priority := model.PriorityMedium
	switch {
	case countContained(lower, urgentKeywords) > 0:
		priority = model.PriorityHigh
		confidence += taskUrgencyBonus
	case countContained(lower, lowPriorityKeywords) > 0:
		priority = model.PriorityLow
	}

	description := strings.TrimSpace(strings.Replace(cleaned, title, "", 1))
	if utf8.RuneCountInString(description) > maxDescRunes {
		description = truncateRunes(description, maxDescRunes) + truncationMarker
	}
	if description == "" {
		description = fallbackDesc
	}

	if title == "" || dueDate == "" {
		return extraction.ExtractedTask{}, false
	}

	return extraction.ExtractedTask{
		Title:       truncateRunes(title, maxTitleRunes),
		Course:      course,
		Description: description,
		DueDate:     dueDate,
		DueTime:     dueTime,
		Priority:    priority,
		Confidence:  min(confidence, maxConfidence),
	}, true
}

// pickTitle prefers a first line of reasonable length, then the first sentence
// that mentions an action verb.
func pickTitle(cleaned string, actions []string) (string, bool) {
	firstLine, _, _ := strings.Cut(cleaned, "\n")
	if n := utf8.RuneCountInString(firstLine); n > minTitleRunes && n < maxTitleRunes {
		return firstLine, true
	}

	if len(actions) == 0 {
		return "", false
	}
	for _, sentence := range sentenceRe.Split(cleaned, -1) {
		if countContained(strings.ToLower(sentence), actions) > 0 {
			return strings.TrimSpace(sentence), true
		}
	}
	return "", false
}

func firstOr(values []string, fallback string) string {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// ParseTask parses text into a task draft using the current time.
func (uc *implUseCase) ParseTask(ctx context.Context, text string) (extraction.ExtractedTask, error) {
	if strings.TrimSpace(text) == "" {
		return extraction.ExtractedTask{}, extraction.ErrEmptyInput
	}

	t, ok := ParseTaskFromText(text, uc.clock.Now())
	if !ok {
		uc.l.Warnf(ctx, "%s: no task could be derived", logPrefixParseTask)
		return extraction.ExtractedTask{}, extraction.ErrInsufficientSignal
	}

	uc.l.Debugf(ctx, "%s: title=%q course=%q due=%s %s confidence=%d",
		logPrefixParseTask, t.Title, t.Course, t.DueDate, t.DueTime, t.Confidence)
	return t, nil
}
