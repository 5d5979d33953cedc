package usecase

import (
	"context"
	"strings"

	"univio/internal/extraction"
	"univio/pkg/datemath"
)

// ParseScheduleFromText builds a class slot from free text. ok is false when the
// text names no weekday.
func ParseScheduleFromText(raw string) (extraction.ExtractedSchedule, bool) {
	cleaned := Preprocess(raw)
	e := ExtractEntities(cleaned)

	confidence := baseConfidence

	course := unknownCourse
	if len(e.Courses) > 0 {
		course = e.Courses[0]
		confidence += scheduleCourse
	}

	day := weekdayRe.FindString(cleaned)
	if day == "" {
		return extraction.ExtractedSchedule{}, false
	}
	confidence += scheduleDay

	start, end := defaultStartTime, defaultEndTime
	switch {
	case len(e.Times) >= 2:
		start = datemath.NormalizeTime(e.Times[0])
		end = datemath.NormalizeTime(e.Times[1])
		confidence += scheduleTimeRange
	case len(e.Times) == 1:
		start = datemath.NormalizeTime(e.Times[0])
	}

	location := unknownLocation
	if len(e.Locations) > 0 {
		location = e.Locations[0]
		confidence += scheduleLocation
	}

	return extraction.ExtractedSchedule{
		CourseName: course,
		Day:        day,
		StartTime:  start,
		EndTime:    end,
		Location:   location,
		Confidence: min(confidence, maxConfidence),
	}, true
}

// ParseSchedule parses text into a class slot.
func (uc *implUseCase) ParseSchedule(ctx context.Context, text string) (extraction.ExtractedSchedule, error) {
	if strings.TrimSpace(text) == "" {
		return extraction.ExtractedSchedule{}, extraction.ErrEmptyInput
	}

	s, ok := ParseScheduleFromText(text)
	if !ok {
		uc.l.Debugf(ctx, "%s: no weekday in text", logPrefixParseSchedule)
		return extraction.ExtractedSchedule{}, extraction.ErrNoWeekday
	}

	uc.l.Debugf(ctx, "%s: course=%q day=%s %s-%s location=%q confidence=%d",
		logPrefixParseSchedule, s.CourseName, s.Day, s.StartTime, s.EndTime, s.Location, s.Confidence)
	return s, nil
}
