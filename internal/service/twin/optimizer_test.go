package twin

import (
	"testing"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
)

func TestBaselinePerformanceFromDailyAggregates(t *testing.T) {
	history := &models.ActivityHistory{
		WorkerID: "w1",
		Daily: []models.DailyAggregate{
			{TotalEarnings: 60, TotalHours: 3, RideCount: 4},
			{TotalEarnings: 80, TotalHours: 4, RideCount: 6},
		},
	}

	perf := baselinePerformance(history)

	if !almostEqual(perf.WeeklyEarnings, 490) { // mean 70 * 7
		t.Fatalf("weekly earnings = %v, want 490", perf.WeeklyEarnings)
	}
	if !almostEqual(perf.WeeklyHours, 24.5) { // mean 3.5 * 7
		t.Fatalf("weekly hours = %v, want 24.5", perf.WeeklyHours)
	}
	if !almostEqual(perf.WeeklyRides, 35) { // mean 5 * 7
		t.Fatalf("weekly rides = %v, want 35", perf.WeeklyRides)
	}
	if !almostEqual(perf.EfficiencyScore, 20) {
		t.Fatalf("efficiency = %v, want 20", perf.EfficiencyScore)
	}
}

func TestBaselinePerformanceFallsBackToRecords(t *testing.T) {
	history := &models.ActivityHistory{
		WorkerID: "w1",
		Records: []models.ActivityRecord{
			tripAt(t, "2025-06-02", 17, 20),
			tripAt(t, "2025-06-02", 18, 20),
			tripAt(t, "2025-06-03", 17, 20),
		},
	}

	perf := baselinePerformance(history)

	// Two days: 40/2h and 20/1h, daily means 30 earnings and 1.5 hours.
	if !almostEqual(perf.WeeklyEarnings, 210) {
		t.Fatalf("weekly earnings = %v, want 210", perf.WeeklyEarnings)
	}
	if !almostEqual(perf.WeeklyHours, 10.5) {
		t.Fatalf("weekly hours = %v, want 10.5", perf.WeeklyHours)
	}
	if !almostEqual(perf.EfficiencyScore, 20) {
		t.Fatalf("efficiency = %v, want 20", perf.EfficiencyScore)
	}
}

func TestBaselinePerformanceEmptyHistory(t *testing.T) {
	perf := baselinePerformance(&models.ActivityHistory{WorkerID: "w1"})

	if perf.WeeklyEarnings != 0 || perf.WeeklyHours != 0 || perf.EfficiencyScore != 0 {
		t.Fatalf("empty baseline = %+v, want zeros", perf)
	}
}

func TestRankScenariosOrdering(t *testing.T) {
	result := &models.OptimizationResult{
		Scenarios: []models.OptimizationScenario{
			{Archetype: types.ArchetypeCurrentPattern, ProjectedEarnings: 300, Feasibility: 0.9},
			{Archetype: types.ArchetypeFixedGrind, ProjectedEarnings: 500, Feasibility: 0.4},
			{Archetype: types.ArchetypeSurgeFocus, ProjectedEarnings: 500, Feasibility: 0.7},
		},
	}

	rankScenarios(result, DefaultParams())

	// Equal earnings break on feasibility; surge focus outranks fixed grind.
	if result.Scenarios[0].Archetype != types.ArchetypeSurgeFocus {
		t.Fatalf("top scenario = %s, want surge focus", result.Scenarios[0].Archetype)
	}
	if result.Scenarios[1].Archetype != types.ArchetypeFixedGrind {
		t.Fatalf("second scenario = %s, want fixed grind", result.Scenarios[1].Archetype)
	}
	if result.Recommended != types.ArchetypeSurgeFocus {
		t.Fatalf("recommended = %s, want surge focus", result.Recommended)
	}
	if result.NoFeasibleImprovement {
		t.Fatal("feasible scenario exists, flag must be clear")
	}
}

func TestRankScenariosExactDrawBreaksOnArchetypeOrder(t *testing.T) {
	result := &models.OptimizationResult{
		Scenarios: []models.OptimizationScenario{
			{Archetype: types.ArchetypeWeekendFocus, ProjectedEarnings: 400, Feasibility: 0.6},
			{Archetype: types.ArchetypeEarlyShift, ProjectedEarnings: 400, Feasibility: 0.6},
		},
	}

	rankScenarios(result, DefaultParams())

	if result.Scenarios[0].Archetype != types.ArchetypeEarlyShift {
		t.Fatalf("top scenario = %s, want early shift by fixed order", result.Scenarios[0].Archetype)
	}
}

func TestRankScenariosNoFeasibleFallsBackToCurrent(t *testing.T) {
	result := &models.OptimizationResult{
		Scenarios: []models.OptimizationScenario{
			{Archetype: types.ArchetypeCurrentPattern, ProjectedEarnings: 300, Feasibility: 0.1},
			{Archetype: types.ArchetypeFixedGrind, ProjectedEarnings: 600, Feasibility: 0.2},
		},
	}

	rankScenarios(result, DefaultParams())

	if result.Recommended != types.ArchetypeCurrentPattern {
		t.Fatalf("recommended = %s, want current pattern fallback", result.Recommended)
	}
	if !result.NoFeasibleImprovement {
		t.Fatal("fallback must set the NoFeasibleImprovement flag")
	}
}

func TestImprovementPct(t *testing.T) {
	tests := []struct {
		name      string
		projected float64
		baseline  float64
		want      float64
	}{
		{"gain", 550, 500, 10},
		{"loss", 450, 500, -10},
		{"zero baseline", 550, 0, 0},
		{"negative baseline", 550, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := improvementPct(tt.projected, tt.baseline); !almostEqual(got, tt.want) {
				t.Fatalf("improvementPct(%v, %v) = %v, want %v", tt.projected, tt.baseline, got, tt.want)
			}
		})
	}
}

func TestBuildInsightsLowConfidenceNote(t *testing.T) {
	profile := &models.BehavioralProfile{LowConfidence: true}
	result := &models.OptimizationResult{
		Current: models.CurrentPerformance{WeeklyEarnings: 100, WeeklyHours: 10},
		Scenarios: []models.OptimizationScenario{
			{Archetype: types.ArchetypeCurrentPattern, Label: "Current Pattern", ProjectedEarnings: 90, Feasibility: 0.5},
		},
		Recommended:   types.ArchetypeCurrentPattern,
		LowConfidence: true,
	}

	insights := buildInsights(result, profile)

	if len(insights) == 0 {
		t.Fatal("expected at least one insight")
	}
	found := false
	for _, s := range insights {
		if s == "Projections are based on limited history; treat them as rough estimates." {
			found = true
		}
	}
	if !found {
		t.Fatalf("low confidence note missing from insights: %v", insights)
	}
}
