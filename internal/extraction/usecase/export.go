package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"univio/internal/extraction"
	"univio/pkg/datemath"
	"univio/pkg/gcalendar"
)

// ExportSchedule puts a class slot on the calendar as a weekly event starting on
// the next matching weekday (today counts).
func (uc *implUseCase) ExportSchedule(ctx context.Context, input extraction.ExportScheduleInput) (extraction.ExportOutput, error) {
	if uc.calendar == nil {
		return extraction.ExportOutput{}, extraction.ErrCalendarNotConfigured
	}

	s, err := uc.ParseSchedule(ctx, input.Text)
	if err != nil {
		return extraction.ExportOutput{}, err
	}

	wd, ok := datemath.Weekday(s.Day)
	if !ok {
		return extraction.ExportOutput{}, extraction.ErrNoWeekday
	}
	day := uc.parser.NextWeekday(wd, uc.clock.Now()).Format(datemath.ISODateFormat)

	start, err := uc.parser.At(day, s.StartTime)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %v", logPrefixExportSchedule, err)
		return extraction.ExportOutput{}, fmt.Errorf("%w: %v", extraction.ErrInvalidTime, err)
	}
	end, err := uc.parser.At(day, s.EndTime)
	if err != nil || !end.After(start) {
		end = start.Add(classSlotDuration)
	}

	location := s.Location
	if location == unknownLocation {
		location = ""
	}

	out, err := uc.createOnce(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.resolveCalendarID(input.CalendarID),
		Summary:     s.CourseName,
		Description: fmt.Sprintf("Jadwal kuliah setiap %s (confidence %d%%)", s.Day, s.Confidence),
		Location:    location,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.parser.Location().String(),
		Recurrence:  []string{gcalendar.RecurrenceWeekly},
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", logPrefixExportSchedule, err)
		return extraction.ExportOutput{}, err
	}

	uc.l.Infof(ctx, "%s: course=%q first=%s event=%s existing=%t",
		logPrefixExportSchedule, s.CourseName, start.Format(time.RFC3339), out.EventID, out.Existing)
	out.Schedule = &s
	return out, nil
}

// ExportTask puts a short event on the calendar that ends at the task deadline.
func (uc *implUseCase) ExportTask(ctx context.Context, input extraction.ExportTaskInput) (extraction.ExportOutput, error) {
	if uc.calendar == nil {
		return extraction.ExportOutput{}, extraction.ErrCalendarNotConfigured
	}

	t, err := uc.ParseTask(ctx, input.Text)
	if err != nil {
		return extraction.ExportOutput{}, err
	}

	due, err := uc.parser.At(t.DueDate, t.DueTime)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %v", logPrefixExportTask, err)
		return extraction.ExportOutput{}, fmt.Errorf("%w: %v", extraction.ErrInvalidTime, err)
	}

	desc := []string{
		"Mata kuliah: " + t.Course,
		"Prioritas: " + string(t.Priority),
		t.Description,
	}

	out, err := uc.createOnce(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.resolveCalendarID(input.CalendarID),
		Summary:     deadlineSummaryPrefix + t.Title,
		Description: strings.Join(desc, "\n"),
		StartTime:   due.Add(-deadlineEventDuration),
		EndTime:     due,
		Timezone:    uc.parser.Location().String(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", logPrefixExportTask, err)
		return extraction.ExportOutput{}, err
	}

	uc.l.Infof(ctx, "%s: title=%q due=%s event=%s existing=%t",
		logPrefixExportTask, t.Title, due.Format(time.RFC3339), out.EventID, out.Existing)
	out.Task = &t
	return out, nil
}

// createOnce returns the event already on the calendar with the same summary and
// start, or creates it. A failed lookup does not block creation.
func (uc *implUseCase) createOnce(ctx context.Context, req gcalendar.CreateEventRequest) (extraction.ExportOutput, error) {
	existing, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: req.CalendarID,
		TimeMin:    req.StartTime,
		TimeMax:    req.EndTime,
		Query:      req.Summary,
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.extraction.usecase.createOnce: lookup failed, creating anyway: %v", err)
	}
	for _, ev := range existing {
		if ev.Summary == req.Summary && ev.StartTime.Equal(req.StartTime) {
			return extraction.ExportOutput{EventID: ev.ID, EventLink: ev.HtmlLink, Existing: true}, nil
		}
	}

	created, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		return extraction.ExportOutput{}, fmt.Errorf("create calendar event: %w", err)
	}
	return extraction.ExportOutput{EventID: created.ID, EventLink: created.HtmlLink}, nil
}

func (uc *implUseCase) resolveCalendarID(id string) string {
	if id != "" {
		return id
	}
	return uc.calendarID
}
