package extraction

import (
	"univio/internal/model"
)

// TextType classifies free text as a task, a schedule or neither.
type TextType string

const (
	TextTypeTask     TextType = "task"
	TextTypeSchedule TextType = "schedule"
	TextTypeUnknown  TextType = "unknown"
)

// ExtractedTask is a best-effort task draft read from free text.
type ExtractedTask struct {
	Title       string
	Course      string
	Description string
	DueDate     string // YYYY-MM-DD
	DueTime     string // HH:MM
	Priority    model.Priority
	Confidence  int // 0-100
}

// ExtractedSchedule is a best-effort weekly class slot read from free text.
type ExtractedSchedule struct {
	CourseName string
	Day        string // weekday token as written, e.g. "Senin"
	StartTime  string // HH:MM
	EndTime    string // HH:MM
	Location   string
	Confidence int // 0-100
}

// Entities are the substrings recognised in one cleaned text.
type Entities struct {
	Dates     []string
	Times     []string
	Courses   []string
	Locations []string
	Actions   []string
}

// ExtractOutput is the result of Extract. Exactly one of Task and Schedule is
// set, matching Type.
type ExtractOutput struct {
	Type     TextType
	Task     *ExtractedTask
	Schedule *ExtractedSchedule
}

// ExportScheduleInput is the input for exporting a class slot to a calendar.
type ExportScheduleInput struct {
	Text       string
	CalendarID string // empty uses the configured calendar
}

// ExportTaskInput is the input for exporting a task deadline to a calendar.
type ExportTaskInput struct {
	Text       string
	CalendarID string // empty uses the configured calendar
}

// ExportOutput describes the calendar event backing an export.
type ExportOutput struct {
	EventID   string
	EventLink string
	Existing  bool // an identical event was already on the calendar
	Task      *ExtractedTask
	Schedule  *ExtractedSchedule
}
