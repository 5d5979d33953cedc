package usecase

import (
	"context"
	"strings"

	"univio/internal/extraction"
)

// DetectTextType compares how many distinct task and schedule words occur in
// text. A tie, including no words at all, is unknown.
func DetectTextType(raw string) extraction.TextType {
	lower := strings.ToLower(raw)

	taskScore := countContained(lower, taskTypeKeywords)
	scheduleScore := countContained(lower, scheduleTypeKeywords)

	switch {
	case taskScore > scheduleScore:
		return extraction.TextTypeTask
	case scheduleScore > taskScore:
		return extraction.TextTypeSchedule
	default:
		return extraction.TextTypeUnknown
	}
}

// DetectType classifies text.
func (uc *implUseCase) DetectType(ctx context.Context, text string) extraction.TextType {
	tt := DetectTextType(text)
	uc.l.Debugf(ctx, "%s: type=%s", logPrefixDetectType, tt)
	return tt
}
