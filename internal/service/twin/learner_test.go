package twin

import (
	"reflect"
	"testing"
	"time"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
)

func TestLearnEmptyHistory(t *testing.T) {
	history := &models.ActivityHistory{WorkerID: "w1"}

	profile := Learn(history, DefaultParams())

	if !profile.LowConfidence {
		t.Fatal("empty history must produce a low confidence profile")
	}
	if profile.FatigueThresholdHours != DefaultParams().DefaultFatigueHours {
		t.Fatalf("fatigue threshold = %d, want default %d",
			profile.FatigueThresholdHours, DefaultParams().DefaultFatigueHours)
	}
	if profile.AvgRatePerHour != 0 {
		t.Fatalf("avg rate = %v, want 0", profile.AvgRatePerHour)
	}
}

func TestLearnPreferredHoursSortedAscending(t *testing.T) {
	history := eveningDriverHistory(t)

	profile := Learn(history, DefaultParams())

	if !reflect.DeepEqual(profile.PreferredHours, []int{17, 18, 19}) {
		t.Fatalf("preferred hours = %v, want [17 18 19]", profile.PreferredHours)
	}
}

func TestLearnPeakDaysMondayFirst(t *testing.T) {
	history := eveningDriverHistory(t)

	profile := Learn(history, DefaultParams())

	want := []time.Weekday{time.Monday, time.Friday, time.Saturday}
	if !reflect.DeepEqual(profile.PeakDays, want) {
		t.Fatalf("peak days = %v, want %v", profile.PeakDays, want)
	}
}

func TestLearnAverageRatePrefersDailyAggregates(t *testing.T) {
	history := &models.ActivityHistory{
		WorkerID: "w1",
		Records: []models.ActivityRecord{
			tripAt(t, "2025-06-02", 17, 100.0), // would imply rate 100
		},
		Daily: []models.DailyAggregate{
			{WorkerID: "w1", TotalEarnings: 60, TotalHours: 3},
			{WorkerID: "w1", TotalEarnings: 40, TotalHours: 2},
		},
	}

	profile := Learn(history, DefaultParams())

	if !almostEqual(profile.AvgRatePerHour, 20) {
		t.Fatalf("avg rate = %v, want 20 from daily aggregates", profile.AvgRatePerHour)
	}
}

func TestLearnSurgeResponsivenessPositive(t *testing.T) {
	history := eveningDriverHistory(t)

	profile := Learn(history, DefaultParams())

	// Ride counts 10/13/10 at hours 17/18/19 against multipliers
	// 1.5/1.6/1.4 correlate strongly.
	if profile.SurgeResponsiveness < 0.8 {
		t.Fatalf("surge responsiveness = %v, want >= 0.8", profile.SurgeResponsiveness)
	}
	if profile.SurgeResponsiveness > 1 {
		t.Fatalf("surge responsiveness = %v, must not exceed 1", profile.SurgeResponsiveness)
	}
}

func TestLearnFewActiveDaysLowersConfidence(t *testing.T) {
	history := &models.ActivityHistory{
		WorkerID: "w1",
		Records: []models.ActivityRecord{
			tripAt(t, "2025-06-02", 17, 20),
			tripAt(t, "2025-06-03", 17, 20),
		},
	}

	profile := Learn(history, DefaultParams())

	if !profile.LowConfidence {
		t.Fatal("two active days must produce a low confidence profile")
	}
}

func TestFatigueThresholdDetectsDecline(t *testing.T) {
	// Three session lengths with strictly declining efficiency: 3h days at
	// 20/h, 5h days at 15/h, 7h days at 10/h. The shortest length that
	// starts the decline is the threshold.
	records := []models.ActivityRecord{
		tripAt(t, "2025-06-02", 9, 20), tripAt(t, "2025-06-02", 11, 20),
		tripAt(t, "2025-06-03", 9, 15), tripAt(t, "2025-06-03", 13, 15),
		tripAt(t, "2025-06-04", 9, 10), tripAt(t, "2025-06-04", 15, 10),
	}

	if got := fatigueThreshold(records, 8); got != 3 {
		t.Fatalf("fatigue threshold = %d, want 3", got)
	}
}

func TestFatigueThresholdNoDeclineFallsBackToCeiling(t *testing.T) {
	// Efficiency rises with session length, so no decline is observed.
	records := []models.ActivityRecord{
		tripAt(t, "2025-06-02", 9, 10), tripAt(t, "2025-06-02", 11, 10),
		tripAt(t, "2025-06-03", 9, 15), tripAt(t, "2025-06-03", 13, 15),
		tripAt(t, "2025-06-04", 9, 20), tripAt(t, "2025-06-04", 15, 20),
	}

	if got := fatigueThreshold(records, 8); got != 8 {
		t.Fatalf("fatigue threshold = %d, want ceiling 8", got)
	}
}

func TestConsistencyScoreRegularVsErratic(t *testing.T) {
	regular := []models.ActivityRecord{
		tripAt(t, "2025-06-02", 17, 20), tripAt(t, "2025-06-02", 18, 20),
		tripAt(t, "2025-06-03", 17, 20), tripAt(t, "2025-06-03", 18, 20),
		tripAt(t, "2025-06-04", 17, 20), tripAt(t, "2025-06-04", 18, 20),
	}
	erratic := []models.ActivityRecord{
		tripAt(t, "2025-06-02", 6, 20),
		tripAt(t, "2025-06-03", 22, 20), tripAt(t, "2025-06-03", 23, 20),
		tripAt(t, "2025-06-04", 14, 20), tripAt(t, "2025-06-04", 15, 20),
		tripAt(t, "2025-06-04", 16, 20), tripAt(t, "2025-06-04", 17, 20),
	}

	rs := consistencyScore(regular)
	es := consistencyScore(erratic)

	if rs <= es {
		t.Fatalf("regular score %v must exceed erratic score %v", rs, es)
	}
	if rs < 0 || rs > 1 || es < 0 || es > 1 {
		t.Fatalf("scores out of range: regular=%v erratic=%v", rs, es)
	}
}

func TestIncentiveCompletionRateClampsRatios(t *testing.T) {
	incentives := []models.IncentiveRecord{
		{CompletionRatio: 0.5},
		{CompletionRatio: 1.5}, // dirty upstream value, clamps to 1
	}

	if got := incentiveCompletionRate(incentives); !almostEqual(got, 0.75) {
		t.Fatalf("completion rate = %v, want 0.75", got)
	}
	if got := incentiveCompletionRate(nil); got != 0 {
		t.Fatalf("completion rate with no incentives = %v, want 0", got)
	}
}

// tripAt builds a one-hour trip on the given date starting at the given hour.
func tripAt(t *testing.T, date string, hour int, earnings float64) models.ActivityRecord {
	t.Helper()

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad date %q: %v", date, err)
	}
	start := day.Add(time.Duration(hour) * time.Hour)

	return models.ActivityRecord{
		WorkerID:     "w1",
		StartTime:    start,
		DurationMins: 60,
		NetEarnings:  earnings,
		Weekday:      start.Weekday(),
		Hour:         hour,
		Zone:         "center",
	}
}

// eveningDriverHistory is the shared fixture: an evening driver with 33 trips
// across ten active days (Mondays, Fridays, Saturdays), trips concentrated at
// 17-19 with extra volume at 18 on the busiest days.
func eveningDriverHistory(t *testing.T) *models.ActivityHistory {
	t.Helper()

	days := []string{
		"2025-06-02", // Mon
		"2025-06-06", // Fri, double 18h
		"2025-06-07", // Sat
		"2025-06-09", // Mon
		"2025-06-13", // Fri, double 18h
		"2025-06-14", // Sat, double 18h
		"2025-06-16", // Mon
		"2025-06-20", // Fri
		"2025-06-21", // Sat
		"2025-06-27", // Fri
	}
	doubled := map[string]bool{"2025-06-06": true, "2025-06-13": true, "2025-06-14": true}

	var records []models.ActivityRecord
	for _, d := range days {
		records = append(records,
			tripAt(t, d, 17, 23),
			tripAt(t, d, 18, 23),
			tripAt(t, d, 19, 23),
		)
		if doubled[d] {
			records = append(records, tripAt(t, d, 18, 23))
		}
	}

	return &models.ActivityHistory{
		WorkerID: "w1",
		Records:  records,
		SurgeTable: []models.SurgeEntry{
			{Hour: 9, Zone: "center", Multiplier: 1.0},
			{Hour: 12, Zone: "center", Multiplier: 1.1},
			{Hour: 17, Zone: "center", Multiplier: 1.5},
			{Hour: 18, Zone: "center", Multiplier: 1.6},
			{Hour: 19, Zone: "center", Multiplier: 1.4},
		},
		Incentives: []models.IncentiveRecord{
			{WorkerID: "w1", WeekID: "2025-W23", CompletionRatio: 0.8},
			{WorkerID: "w1", WeekID: "2025-W24", CompletionRatio: 1.0},
		},
	}
}
