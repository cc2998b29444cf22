package models

import (
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
)

// CurrentPerformance is the baseline computed directly from history,
// bypassing simulation.
type CurrentPerformance struct {
	WeeklyEarnings  float64 `json:"weekly_earnings"`
	WeeklyHours     float64 `json:"weekly_hours"`
	WeeklyRides     float64 `json:"weekly_rides"`
	EfficiencyScore float64 `json:"efficiency_score"` // earnings per worked hour
}

// OptimizationScenario is one strategy archetype applied to a profile.
type OptimizationScenario struct {
	Archetype         types.Archetype `json:"archetype"`
	Label             string          `json:"label"`
	Schedule          WeeklySchedule  `json:"schedule"`
	ProjectedEarnings float64         `json:"projected_earnings"`
	ImprovementPct    float64         `json:"improvement_pct"`
	Feasibility       float64         `json:"feasibility"`
	Description       string          `json:"description"`
}

// OptimizationResult is the output of one optimization run. Scenarios are
// ordered best-first; Recommended always names a member of Scenarios.
type OptimizationResult struct {
	WorkerID    string                 `json:"worker_id"`
	Current     CurrentPerformance     `json:"current_performance"`
	Scenarios   []OptimizationScenario `json:"scenarios"`
	Recommended types.Archetype        `json:"recommended"`

	// NoFeasibleImprovement is set when no scenario cleared the minimum
	// feasibility bar and the current pattern was recommended as fallback.
	NoFeasibleImprovement bool `json:"no_feasible_improvement"`

	// LowConfidence propagates the profile's confidence marker.
	LowConfidence bool `json:"low_confidence"`

	Insights []string `json:"insights"`

	// SnapshotHash fingerprints the history snapshot this result was computed
	// from. Pollers can skip identical results without diffing the payload.
	SnapshotHash string `json:"snapshot_hash"`
}

// RecommendedScenario returns the scenario Recommended points at.
func (r *OptimizationResult) RecommendedScenario() *OptimizationScenario {
	for i := range r.Scenarios {
		if r.Scenarios[i].Archetype == r.Recommended {
			return &r.Scenarios[i]
		}
	}
	return nil
}
