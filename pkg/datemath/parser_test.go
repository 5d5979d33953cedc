package datemath_test

import (
	"testing"
	"time"

	"univio/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Jakarta")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 12, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		due    string
		want   int
		wantOK bool
	}{
		{name: "Due today (midnight already passed)", due: "2025-12-10", want: 0, wantOK: true},
		{name: "Due tomorrow", due: "2025-12-11", want: 1, wantOK: true},
		{name: "Due in three days", due: "2025-12-13", want: 3, wantOK: true},
		{name: "Overdue", due: "2025-12-01", want: -9, wantOK: true},
		{name: "RFC3339 timestamp", due: "2025-12-12T15:30:00Z", want: 2, wantOK: true},
		{name: "Garbage", due: "besok", wantOK: false},
		{name: "Empty", due: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := datemath.DaysUntil(tt.due, now)
			if ok != tt.wantOK {
				t.Fatalf("DaysUntil() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("DaysUntil() got = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDaysUntil_UsesLocationOfNow(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 23:00 UTC on Dec 10 is already 06:00 on Dec 11 in Jakarta.
	now := time.Date(2025, 12, 10, 23, 0, 0, 0, time.UTC).In(jakarta)

	got, ok := datemath.DaysUntil("2025-12-12", now)
	if !ok || got != 1 {
		t.Errorf("DaysUntil() = %d, %v; want 1, true", got, ok)
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Indonesian long form", input: "15 Desember 2025", want: "2025-12-15"},
		{name: "Indonesian mixed case", input: "3 MARET 2026", want: "2026-03-03"},
		{name: "Numeric slash", input: "15/12/2025", want: "2025-12-15"},
		{name: "Numeric dash", input: "1-2-2026", want: "2026-02-01"},
		{name: "Day overflow rolls over", input: "31 Februari 2026", want: "2026-03-03"},
		{name: "Weekday prefixed without year falls back", input: "Senin, 15 Desember", want: "2025-12-08"},
		{name: "Unparseable falls back a week", input: "minggu depan", want: "2025-12-08"},
		{name: "Indonesian wins over numeric", input: "15 Desember 2025 atau 20/12/2025", want: "2025-12-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.ParseDate(tt.input, now); got != tt.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"14:30", "14:30"},
		{"2:30 PM", "14:30"},
		{"2:30pm", "14:30"},
		{"12:15 am", "00:15"},
		{"12:15 pm", "12:15"},
		{"9.05", "09:05"},
		{"08:00 WIB", "08:00"},
		{"no clock here", "23:59"},
		{"", "23:59"},
	}

	for _, tt := range tests {
		if got := datemath.NormalizeTime(tt.input); got != tt.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeTime_TwelveAndTwentyFourHourAgree(t *testing.T) {
	if a, b := datemath.NormalizeTime("2:30 PM"), datemath.NormalizeTime("14:30"); a != b {
		t.Errorf("expected identical output, got %q and %q", a, b)
	}
}

func TestNextWeekday(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		wd   time.Weekday
		want time.Time
	}{
		{name: "Same day", wd: time.Wednesday, want: startOfBase},
		{name: "Later this week", wd: time.Friday, want: startOfBase.AddDate(0, 0, 2)},
		{name: "Wraps to next week", wd: time.Monday, want: startOfBase.AddDate(0, 0, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.NextWeekday(tt.wd, base); !got.Equal(tt.want) {
				t.Errorf("NextWeekday() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeekday(t *testing.T) {
	if wd, ok := datemath.Weekday("Kamis"); !ok || wd != time.Thursday {
		t.Errorf("Weekday(Kamis) = %v, %v", wd, ok)
	}
	if _, ok := datemath.Weekday("Funday"); ok {
		t.Errorf("expected unknown weekday")
	}
}

func TestAt(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	got, err := parser.At("2025-12-15", "23:59")
	if err != nil {
		t.Fatalf("At() error = %v", err)
	}
	want := time.Date(2025, 12, 15, 23, 59, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At() = %v, want %v", got, want)
	}

	if _, err := parser.At("2025-12-15", "late"); err == nil {
		t.Errorf("expected error for malformed clock time")
	}
}

func TestClocks(t *testing.T) {
	fixed := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	if got := datemath.FixedClock(fixed).Now(); !got.Equal(fixed) {
		t.Errorf("FixedClock.Now() = %v", got)
	}
	if (datemath.SystemClock{Location: time.UTC}).Now().Location() != time.UTC {
		t.Errorf("SystemClock must report its location")
	}
}
