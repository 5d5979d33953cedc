package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"univio/internal/extraction"
	"univio/pkg/datemath"
	"univio/pkg/gcalendar"
	pkgLog "univio/pkg/log"
)

type fakeCalendar struct {
	created   []gcalendar.CreateEventRequest
	existing  []gcalendar.Event
	listErr   error
	createErr error
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar.google.com/evt-1", Summary: req.Summary}, nil
}

func (f *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return f.existing, f.listErr
}

func newTestUseCase(t *testing.T, cal Calendar) (*implUseCase, *time.Location) {
	t.Helper()
	parser, err := datemath.NewParser("Asia/Jakarta")
	require.NoError(t, err)

	// Wednesday 10 December 2025, 10:00 WIB.
	now := time.Date(2025, 12, 10, 10, 0, 0, 0, parser.Location())
	return New(pkgLog.NewNop(), Config{
		Clock:      datemath.FixedClock(now),
		Parser:     parser,
		Calendar:   cal,
		CalendarID: "kuliah@group.calendar.google.com",
	}), parser.Location()
}

func TestUseCase_ParseAndDetect(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, nil)

	t.Run("empty task", func(t *testing.T) {
		_, err := uc.ParseTask(ctx, " \n ")
		assert.ErrorIs(t, err, extraction.ErrEmptyInput)
	})

	t.Run("empty schedule", func(t *testing.T) {
		_, err := uc.ParseSchedule(ctx, "")
		assert.ErrorIs(t, err, extraction.ErrEmptyInput)
	})

	t.Run("task uses clock", func(t *testing.T) {
		got, err := uc.ParseTask(ctx, "Kumpulkan tugas statistika")
		require.NoError(t, err)
		assert.Equal(t, "2025-12-17", got.DueDate)
	})

	t.Run("schedule without weekday", func(t *testing.T) {
		_, err := uc.ParseSchedule(ctx, "Kelas Basis Data di Ruang 301")
		assert.ErrorIs(t, err, extraction.ErrNoWeekday)
	})

	t.Run("detect", func(t *testing.T) {
		assert.Equal(t, extraction.TextTypeSchedule, uc.DetectType(ctx, "Jadwal kelas"))
	})
}

func TestUseCase_Extract(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, nil)

	t.Run("task", func(t *testing.T) {
		out, err := uc.Extract(ctx, "Tugas: kumpulkan laporan basis data 15 Desember 2025")
		require.NoError(t, err)
		assert.Equal(t, extraction.TextTypeTask, out.Type)
		require.NotNil(t, out.Task)
		assert.Nil(t, out.Schedule)
		assert.Equal(t, "2025-12-15", out.Task.DueDate)
	})

	t.Run("schedule", func(t *testing.T) {
		out, err := uc.Extract(ctx, "Jadwal kelas Kalkulus hari Selasa 10:00 - 11:40")
		require.NoError(t, err)
		assert.Equal(t, extraction.TextTypeSchedule, out.Type)
		require.NotNil(t, out.Schedule)
		assert.Equal(t, "Selasa", out.Schedule.Day)
	})

	t.Run("schedule without weekday", func(t *testing.T) {
		out, err := uc.Extract(ctx, "Jadwal kelas Basis Data di Ruang 301")
		assert.ErrorIs(t, err, extraction.ErrNoWeekday)
		assert.Equal(t, extraction.TextTypeSchedule, out.Type)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := uc.Extract(ctx, "Tugas kuliah")
		assert.ErrorIs(t, err, extraction.ErrUnknownTextType)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := uc.Extract(ctx, "")
		assert.ErrorIs(t, err, extraction.ErrEmptyInput)
	})
}

func TestUseCase_ExportSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("weekly event on next weekday", func(t *testing.T) {
		cal := &fakeCalendar{}
		uc, loc := newTestUseCase(t, cal)

		out, err := uc.ExportSchedule(ctx, extraction.ExportScheduleInput{
			Text: "Jadwal kuliah Basis Data setiap Senin pukul 08.00 - 09.40 di Ruang 301",
		})
		require.NoError(t, err)
		assert.Equal(t, "evt-1", out.EventID)
		assert.False(t, out.Existing)
		require.NotNil(t, out.Schedule)

		require.Len(t, cal.created, 1)
		req := cal.created[0]
		assert.Equal(t, "kuliah@group.calendar.google.com", req.CalendarID)
		assert.Equal(t, "basis data", req.Summary)
		assert.Equal(t, "Ruang 301", req.Location)
		assert.Equal(t, time.Date(2025, 12, 15, 8, 0, 0, 0, loc), req.StartTime)
		assert.Equal(t, time.Date(2025, 12, 15, 9, 40, 0, 0, loc), req.EndTime)
		assert.Equal(t, "Asia/Jakarta", req.Timezone)
		assert.Equal(t, []string{gcalendar.RecurrenceWeekly}, req.Recurrence)
	})

	t.Run("today counts and end before start gets a class slot", func(t *testing.T) {
		cal := &fakeCalendar{}
		uc, loc := newTestUseCase(t, cal)

		_, err := uc.ExportSchedule(ctx, extraction.ExportScheduleInput{
			Text:       "Kelas Kalkulus Rabu 13:00",
			CalendarID: "primary",
		})
		require.NoError(t, err)

		require.Len(t, cal.created, 1)
		req := cal.created[0]
		assert.Equal(t, "primary", req.CalendarID)
		assert.Empty(t, req.Location)
		assert.Equal(t, time.Date(2025, 12, 10, 13, 0, 0, 0, loc), req.StartTime)
		assert.Equal(t, req.StartTime.Add(100*time.Minute), req.EndTime)
	})

	t.Run("existing event is reused", func(t *testing.T) {
		parser, _ := datemath.NewParser("Asia/Jakarta")
		start := time.Date(2025, 12, 15, 8, 0, 0, 0, parser.Location())
		cal := &fakeCalendar{existing: []gcalendar.Event{
			{ID: "old", Summary: "basis data", HtmlLink: "https://calendar.google.com/old", StartTime: start},
		}}
		uc, _ := newTestUseCase(t, cal)

		out, err := uc.ExportSchedule(ctx, extraction.ExportScheduleInput{Text: "Basis Data Senin 08:00 - 09:40"})
		require.NoError(t, err)
		assert.True(t, out.Existing)
		assert.Equal(t, "old", out.EventID)
		assert.Empty(t, cal.created)
	})

	t.Run("lookup failure still creates", func(t *testing.T) {
		cal := &fakeCalendar{listErr: errors.New("quota")}
		uc, _ := newTestUseCase(t, cal)

		_, err := uc.ExportSchedule(ctx, extraction.ExportScheduleInput{Text: "Basis Data Senin"})
		require.NoError(t, err)
		assert.Len(t, cal.created, 1)
	})

	t.Run("invalid time", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &fakeCalendar{})

		_, err := uc.ExportSchedule(ctx, extraction.ExportScheduleInput{Text: "Kelas Senin 25:00"})
		assert.ErrorIs(t, err, extraction.ErrInvalidTime)
	})

	t.Run("no weekday", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &fakeCalendar{})

		_, err := uc.ExportSchedule(ctx, extraction.ExportScheduleInput{Text: "Kelas Basis Data di Ruang 301"})
		assert.ErrorIs(t, err, extraction.ErrNoWeekday)
	})

	t.Run("not configured", func(t *testing.T) {
		uc, _ := newTestUseCase(t, nil)

		_, err := uc.ExportSchedule(ctx, extraction.ExportScheduleInput{Text: "Basis Data Senin"})
		assert.ErrorIs(t, err, extraction.ErrCalendarNotConfigured)
	})
}

func TestUseCase_ExportTask(t *testing.T) {
	ctx := context.Background()

	t.Run("deadline event", func(t *testing.T) {
		cal := &fakeCalendar{}
		uc, loc := newTestUseCase(t, cal)

		out, err := uc.ExportTask(ctx, extraction.ExportTaskInput{
			Text: "Kumpulkan laporan praktikum jaringan komputer paling lambat 15 Desember 2025 pukul 23:59",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://calendar.google.com/evt-1", out.EventLink)
		require.NotNil(t, out.Task)

		require.Len(t, cal.created, 1)
		req := cal.created[0]
		due := time.Date(2025, 12, 15, 23, 59, 0, 0, loc)
		assert.Equal(t, due, req.EndTime)
		assert.Equal(t, due.Add(-30*time.Minute), req.StartTime)
		assert.Equal(t, "Deadline: "+out.Task.Title, req.Summary)
		assert.Contains(t, req.Description, "jaringan komputer")
		assert.Empty(t, req.Recurrence)
	})

	t.Run("calendar failure", func(t *testing.T) {
		cal := &fakeCalendar{createErr: errors.New("boom")}
		uc, _ := newTestUseCase(t, cal)

		_, err := uc.ExportTask(ctx, extraction.ExportTaskInput{Text: "Kumpulkan tugas"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, extraction.ErrCalendarNotConfigured)
	})

	t.Run("empty", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &fakeCalendar{})

		_, err := uc.ExportTask(ctx, extraction.ExportTaskInput{})
		assert.ErrorIs(t, err, extraction.ErrEmptyInput)
	})

	t.Run("not configured", func(t *testing.T) {
		uc, _ := newTestUseCase(t, nil)

		_, err := uc.ExportTask(ctx, extraction.ExportTaskInput{Text: "Kumpulkan tugas"})
		assert.ErrorIs(t, err, extraction.ErrCalendarNotConfigured)
	})
}
