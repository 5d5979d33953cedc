package gcalendar

import "time"

// DefaultCalendarID is used when a request leaves CalendarID empty.
const DefaultCalendarID = "primary"

// RecurrenceWeekly repeats an event every week on its start weekday.
const RecurrenceWeekly = "RRULE:FREQ=WEEKLY"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string   // e.g. "Asia/Jakarta"
	Recurrence  []string // RRULE lines, e.g. RecurrenceWeekly
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Recurrence  []string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	Query      string // free-text filter, matched by Google against summary and description
	MaxResults int64
}
