package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"univio/internal/model"
	"univio/internal/priority"
	"univio/pkg/datemath"
	pkgLog "univio/pkg/log"
)

func TestEstimateTimeToComplete(t *testing.T) {
	tests := []struct {
		name string
		task model.Task
		want priority.Estimate
	}{
		{
			name: "base",
			task: model.Task{Title: "Tugas"},
			want: priority.Estimate{Hours: 2, Label: "2 jam"},
		},
		{
			name: "medium complexity and report weight",
			task: model.Task{Title: "Laporan"},
			want: priority.Estimate{Hours: 4, Label: "4 jam"},
		},
		{
			name: "complex exam spreads over days",
			task: model.Task{Title: "UAS", Description: "analisis desain sistem"},
			want: priority.Estimate{Hours: 8, MultiDay: true, Label: "8 jam (spread over multiple days)"},
		},
		{
			name: "thesis adds two hours",
			task: model.Task{Title: "Proposal skripsi"},
			want: priority.Estimate{Hours: 4, Label: "4 jam"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateTimeToComplete(tt.task))
		})
	}
}

func TestBestTimeToWork(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2025, 12, 10, hour, 30, 0, 0, time.UTC)
	}

	tests := []struct {
		hour int
		want string
	}{
		{hour: 5, want: bestTimeTomorrowMorning},
		{hour: 6, want: bestTimeMorning},
		{hour: 11, want: bestTimeMorning},
		{hour: 12, want: bestTimeAfternoon},
		{hour: 17, want: bestTimeAfternoon},
		{hour: 18, want: bestTimeTomorrowMorning},
		{hour: 23, want: bestTimeTomorrowMorning},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BestTimeToWork(at(tt.hour)), "hour=%d", tt.hour)
	}
}

func TestUseCase_BestTimeToWork(t *testing.T) {
	uc := New(pkgLog.NewNop(), datemath.FixedClock(time.Date(2025, 12, 10, 14, 0, 0, 0, time.UTC)), 0)

	assert.Equal(t, bestTimeAfternoon, uc.BestTimeToWork(context.Background()))
	assert.Equal(t, 2, uc.EstimateTime(context.Background(), model.Task{Title: "Tugas"}).Hours)
}
