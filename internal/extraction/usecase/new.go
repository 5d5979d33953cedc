package usecase

import (
	"context"

	"univio/internal/extraction"
	"univio/pkg/datemath"
	"univio/pkg/gcalendar"
	pkgLog "univio/pkg/log"
)

// Calendar is the subset of the Google Calendar client used for export.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Config holds the dependencies of the extraction use case. Calendar may be nil,
// in which case export is unavailable.
type Config struct {
	Clock      datemath.Clock
	Parser     *datemath.Parser
	Calendar   Calendar
	CalendarID string
}

// implUseCase is the private implementation of extraction.UseCase.
type implUseCase struct {
	l          pkgLog.Logger
	clock      datemath.Clock
	parser     *datemath.Parser
	calendar   Calendar
	calendarID string
}

var _ extraction.UseCase = (*implUseCase)(nil)

// New creates a new extraction UseCase.
func New(l pkgLog.Logger, cfg Config) *implUseCase {
	return &implUseCase{
		l:          l,
		clock:      cfg.Clock,
		parser:     cfg.Parser,
		calendar:   cfg.Calendar,
		calendarID: cfg.CalendarID,
	}
}
