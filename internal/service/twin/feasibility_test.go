package twin

import (
	"testing"
	"time"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
)

func TestScoreFeasibilityRange(t *testing.T) {
	profile := &models.BehavioralProfile{
		PreferredHours:        []int{17, 18, 19},
		PeakDays:              []time.Weekday{time.Monday, time.Friday},
		FatigueThresholdHours: 8,
	}

	schedules := []models.WeeklySchedule{
		{}, // empty
		models.NewWeeklySchedule([]models.ScheduleBlock{
			{Weekday: time.Monday, StartHour: 17, EndHour: 20},
		}),
		models.NewWeeklySchedule([]models.ScheduleBlock{
			{Weekday: time.Sunday, StartHour: 3, EndHour: 23},
		}),
	}

	for i, s := range schedules {
		got := scoreFeasibility(s, profile, DefaultParams())
		if got < 0 || got > 1 {
			t.Fatalf("schedule %d: score %v out of [0,1]", i, got)
		}
	}
}

func TestScoreFeasibilityMirrorOfHistoryScoresHighest(t *testing.T) {
	profile := &models.BehavioralProfile{
		PreferredHours:        []int{17, 18, 19},
		PeakDays:              []time.Weekday{time.Monday, time.Friday},
		FatigueThresholdHours: 8,
	}

	mirror := models.NewWeeklySchedule([]models.ScheduleBlock{
		{Weekday: time.Monday, StartHour: 17, EndHour: 20},
		{Weekday: time.Friday, StartHour: 17, EndHour: 20},
	})
	drastic := models.NewWeeklySchedule([]models.ScheduleBlock{
		{Weekday: time.Sunday, StartHour: 4, EndHour: 8},
		{Weekday: time.Wednesday, StartHour: 4, EndHour: 8},
	})

	p := DefaultParams()
	ms := scoreFeasibility(mirror, profile, p)
	ds := scoreFeasibility(drastic, profile, p)

	// A schedule identical to demonstrated behavior maxes every sub-score.
	if !almostEqual(ms, 1) {
		t.Fatalf("mirror score = %v, want 1", ms)
	}
	if ds >= ms {
		t.Fatalf("drastic score %v must be below mirror score %v", ds, ms)
	}
}

func TestScoreFeasibilityOverworkPenalty(t *testing.T) {
	profile := &models.BehavioralProfile{
		PreferredHours:        []int{9, 10, 11, 12, 13},
		PeakDays:              types.WeekOrder(),
		FatigueThresholdHours: 4,
	}

	within := weekLongSchedule(9, 13) // 4h/day = budget exactly
	beyond := weekLongSchedule(9, 15) // 6h/day, 14h over budget

	p := DefaultParams()
	ws := scoreFeasibility(within, profile, p)
	bs := scoreFeasibility(beyond, profile, p)

	if bs >= ws {
		t.Fatalf("overworked score %v must be below in-budget score %v", bs, ws)
	}
}

func TestScoreFeasibilityLowConfidenceCap(t *testing.T) {
	profile := &models.BehavioralProfile{
		PreferredHours:        []int{17, 18, 19},
		PeakDays:              []time.Weekday{time.Monday},
		FatigueThresholdHours: 8,
		LowConfidence:         true,
	}
	mirror := models.NewWeeklySchedule([]models.ScheduleBlock{
		{Weekday: time.Monday, StartHour: 17, EndHour: 20},
	})

	p := DefaultParams()
	got := scoreFeasibility(mirror, profile, p)

	if got > p.LowConfidenceCap {
		t.Fatalf("low confidence score = %v, must not exceed cap %v", got, p.LowConfidenceCap)
	}
}

func TestHourShiftScoreNeutralWithoutPreferredHours(t *testing.T) {
	profile := &models.BehavioralProfile{FatigueThresholdHours: 8}
	schedule := models.NewWeeklySchedule([]models.ScheduleBlock{
		{Weekday: time.Monday, StartHour: 9, EndHour: 12},
	})

	if got := hourShiftScore(schedule, profile, DefaultParams()); got != 0.5 {
		t.Fatalf("shift score = %v, want neutral 0.5", got)
	}
}

// weekLongSchedule places the same block on every day of the week.
func weekLongSchedule(start, end int) models.WeeklySchedule {
	var blocks []models.ScheduleBlock
	for _, d := range types.WeekOrder() {
		blocks = append(blocks, models.ScheduleBlock{Weekday: d, StartHour: start, EndHour: end})
	}
	return models.NewWeeklySchedule(blocks)
}

func TestNearestDistance(t *testing.T) {
	preferred := []int{9, 17}

	tests := []struct {
		hour int
		want int
	}{
		{9, 0},
		{12, 3},
		{13, 4},
		{20, 3},
	}
	for _, tt := range tests {
		if got := nearestDistance(tt.hour, preferred); got != tt.want {
			t.Fatalf("nearestDistance(%d) = %d, want %d", tt.hour, got, tt.want)
		}
	}
}
