package extraction

import "errors"

var (
	ErrEmptyInput            = errors.New("text is empty")
	ErrInsufficientSignal    = errors.New("not enough information to build a task")
	ErrNoWeekday             = errors.New("no weekday found in text")
	ErrInvalidTime           = errors.New("extracted date or time is not a valid calendar time")
	ErrUnknownTextType       = errors.New("text is neither a task nor a schedule")
	ErrCalendarNotConfigured = errors.New("calendar export is not configured")
)
