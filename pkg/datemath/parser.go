package datemath

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	indonesianDateRe = regexp.MustCompile(`(?i)(\d{1,2})\s+(` + MonthPattern + `)\s+(\d{4})`)
	numericDateRe    = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{4})`)
	clockRe          = regexp.MustCompile(`(\d{1,2})[:.](\d{2})`)
	whitespaceRe     = regexp.MustCompile(`\s`)
)

// Parser resolves calendar arithmetic in one IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Jakarta"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// NextWeekday returns local midnight of the first day on or after now that falls on wd.
func (p *Parser) NextWeekday(wd time.Weekday, now time.Time) time.Time {
	start := p.startOfDay(now)
	delta := (int(wd) - int(start.Weekday()) + 7) % 7
	return start.AddDate(0, 0, delta)
}

// At combines an ISO date and an HH:MM clock time into a local timestamp.
func (p *Parser) At(isoDate, hhmm string) (time.Time, error) {
	t, err := time.ParseInLocation(ISODateFormat+" 15:04", isoDate+" "+hhmm, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", isoDate, hhmm, err)
	}
	return t, nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// DaysUntil returns ceil((due - now) / 24h). dueDate is an ISO date taken at
// midnight in now's location, or an RFC3339 timestamp. ok is false when dueDate
// cannot be parsed.
func DaysUntil(dueDate string, now time.Time) (days int, ok bool) {
	due, err := parseDue(dueDate, now.Location())
	if err != nil {
		return 0, false
	}
	diff := float64(due.Sub(now)) / float64(24*time.Hour)
	return int(math.Ceil(diff)), true
}

func parseDue(dueDate string, loc *time.Location) (time.Time, error) {
	dueDate = strings.TrimSpace(dueDate)
	if t, err := time.ParseInLocation(ISODateFormat, dueDate, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, dueDate)
}

// ParseDate converts a recognised date token to YYYY-MM-DD. The Indonesian long
// form ("15 Desember 2025") is tried before numeric D/M/Y; anything else resolves
// to DefaultDueInDays after now. Out-of-range days and months roll over the way
// a calendar does (31 Februari becomes early March).
func ParseDate(s string, now time.Time) string {
	if m := indonesianDateRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := indonesianMonths[strings.ToLower(m[2])]
		year, _ := strconv.Atoi(m[3])
		return isoDate(year, month, day)
	}

	if m := numericDateRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return isoDate(year, month-1, day)
	}

	return WeekFromNow(now)
}

// WeekFromNow formats the date DefaultDueInDays after now.
func WeekFromNow(now time.Time) string {
	return now.AddDate(0, 0, DefaultDueInDays).Format(ISODateFormat)
}

// isoDate takes a zero-based month.
func isoDate(year, month0, day int) string {
	return time.Date(year, time.Month(month0+1), day, 0, 0, 0, 0, time.UTC).Format(ISODateFormat)
}

// NormalizeTime converts "2:30 PM", "14.30", "08:00 WIB" to zero-padded HH:MM.
// Text without an H:MM clock yields DefaultDueTime. The 12-hour conversion only
// applies when the literal "am"/"pm" is present.
func NormalizeTime(s string) string {
	t := strings.ToLower(whitespaceRe.ReplaceAllString(s, ""))

	m := clockRe.FindStringSubmatch(t)
	if m == nil {
		return DefaultDueTime
	}

	hour, _ := strconv.Atoi(m[1])
	minute := m[2]

	switch {
	case strings.Contains(t, "pm") && hour < 12:
		hour += 12
	case strings.Contains(t, "am") && hour == 12:
		hour = 0
	}

	return fmt.Sprintf("%02d:%s", hour, minute)
}

// Weekday maps an Indonesian weekday name (any case) to time.Weekday.
func Weekday(name string) (time.Weekday, bool) {
	wd, ok := indonesianWeekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}
