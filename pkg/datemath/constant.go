package datemath

import "time"

const (
	ISODateFormat = "2006-01-02"

	// DefaultDueTime is used whenever no clock time can be read from text.
	DefaultDueTime = "23:59"

	// DefaultDueInDays is the fallback deadline distance for undated text.
	DefaultDueInDays = 7
)

// MonthPattern is the regex alternation of Indonesian month names.
const MonthPattern = `januari|februari|maret|april|mei|juni|juli|agustus|september|oktober|november|desember`

// WeekdayPattern is the regex alternation of Indonesian weekday names.
const WeekdayPattern = `senin|selasa|rabu|kamis|jumat|sabtu|minggu`

var indonesianMonths = map[string]int{
	"januari":   0,
	"februari":  1,
	"maret":     2,
	"april":     3,
	"mei":       4,
	"juni":      5,
	"juli":      6,
	"agustus":   7,
	"september": 8,
	"oktober":   9,
	"november":  10,
	"desember":  11,
}

var indonesianWeekdays = map[string]time.Weekday{
	"senin":  time.Monday,
	"selasa": time.Tuesday,
	"rabu":   time.Wednesday,
	"kamis":  time.Thursday,
	"jumat":  time.Friday,
	"sabtu":  time.Saturday,
	"minggu": time.Sunday,
}
