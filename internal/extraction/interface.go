package extraction

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ParseTask turns free text into a task draft.
	ParseTask(ctx context.Context, text string) (ExtractedTask, error)

	// ParseSchedule turns free text into a weekly class slot.
	ParseSchedule(ctx context.Context, text string) (ExtractedSchedule, error)

	// DetectType classifies free text.
	DetectType(ctx context.Context, text string) TextType

	// Extract detects the text type and parses the matching draft.
	Extract(ctx context.Context, text string) (ExtractOutput, error)

	// ExportSchedule creates a weekly recurring calendar event for a class slot.
	ExportSchedule(ctx context.Context, input ExportScheduleInput) (ExportOutput, error)

	// ExportTask creates a calendar event ending at a task's deadline.
	ExportTask(ctx context.Context, input ExportTaskInput) (ExportOutput, error)
}
