package usecase

import (
	"context"
	"strings"

	"univio/internal/extraction"
)

// Extract detects whether text describes a task or a schedule and parses it.
func (uc *implUseCase) Extract(ctx context.Context, text string) (extraction.ExtractOutput, error) {
	if strings.TrimSpace(text) == "" {
		return extraction.ExtractOutput{}, extraction.ErrEmptyInput
	}

	tt := uc.DetectType(ctx, text)
	switch tt {
	case extraction.TextTypeTask:
		t, err := uc.ParseTask(ctx, text)
		if err != nil {
			return extraction.ExtractOutput{Type: tt}, err
		}
		return extraction.ExtractOutput{Type: tt, Task: &t}, nil

	case extraction.TextTypeSchedule:
		s, err := uc.ParseSchedule(ctx, text)
		if err != nil {
			return extraction.ExtractOutput{Type: tt}, err
		}
		return extraction.ExtractOutput{Type: tt, Schedule: &s}, nil

	default:
		uc.l.Infof(ctx, "%s: text type unknown", logPrefixExtract)
		return extraction.ExtractOutput{Type: tt}, extraction.ErrUnknownTextType
	}
}
