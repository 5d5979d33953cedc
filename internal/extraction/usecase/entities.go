package usecase

import (
	"regexp"
	"strings"

	"univio/internal/extraction"
	"univio/pkg/datemath"
)

var (
	// Date patterns are scanned in this order; all matches of one pattern come
	// before any match of the next.
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d{1,2}\s+(?:` + datemath.MonthPattern + `)\s+\d{4}`),
		regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{4}`),
		regexp.MustCompile(`(?i)(?:` + datemath.WeekdayPattern + `),?\s+\d{1,2}\s+(?:` + datemath.MonthPattern + `)`),
	}

	timeRe     = regexp.MustCompile(`(?i)\d{1,2}[:.]\d{2}\s*(?:am|pm|wib)?`)
	locationRe = regexp.MustCompile(`(?i)(?:ruang|lab|laboratorium|gedung|auditorium)\s+[a-z0-9\s]+`)
	weekdayRe  = regexp.MustCompile(`(?i)` + datemath.WeekdayPattern)
	sentenceRe = regexp.MustCompile(`[.!?]`)
)

// ExtractEntities scans cleaned text for dates, times, courses, locations and
// action verbs. Duplicates are kept and text order is preserved per pattern.
func ExtractEntities(cleaned string) extraction.Entities {
	lower := strings.ToLower(cleaned)

	var e extraction.Entities
	for _, re := range datePatterns {
		e.Dates = append(e.Dates, re.FindAllString(cleaned, -1)...)
	}
	e.Times = timeRe.FindAllString(cleaned, -1)
	e.Courses = containedIn(lower, courseVocabulary)

	for _, loc := range locationRe.FindAllString(cleaned, -1) {
		e.Locations = append(e.Locations, strings.TrimSpace(loc))
	}

	e.Actions = containedIn(lower, actionVocabulary)
	return e
}

// containedIn returns the vocabulary entries found in lower, in vocabulary order.
func containedIn(lower string, vocabulary []string) []string {
	var found []string
	for _, w := range vocabulary {
		if strings.Contains(lower, w) {
			found = append(found, w)
		}
	}
	return found
}

func countContained(lower string, keywords []string) int {
	return len(containedIn(lower, keywords))
}
