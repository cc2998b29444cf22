package dto

import (
	"time"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
)

// ProfileResponse is the wire form of a learned behavioral profile.
type ProfileResponse struct {
	WorkerID                string   `json:"worker_id"`
	PreferredHours          []int    `json:"preferred_hours"`
	PeakDays                []string `json:"peak_days"`
	AvgRatePerHour          float64  `json:"avg_rate_per_hour"`
	SurgeResponsiveness     float64  `json:"surge_responsiveness"`
	FatigueThresholdHours   int      `json:"fatigue_threshold_hours"`
	ConsistencyScore        float64  `json:"consistency_score"`
	PreferredZones          []string `json:"preferred_zones,omitempty"`
	IncentiveCompletionRate float64  `json:"incentive_completion_rate"`
	LowConfidence           bool     `json:"low_confidence"`
}

func FromProfile(p *models.BehavioralProfile) ProfileResponse {
	return ProfileResponse{
		WorkerID:                p.WorkerID,
		PreferredHours:          p.PreferredHours,
		PeakDays:                weekdayNames(p.PeakDays),
		AvgRatePerHour:          p.AvgRatePerHour,
		SurgeResponsiveness:     p.SurgeResponsiveness,
		FatigueThresholdHours:   p.FatigueThresholdHours,
		ConsistencyScore:        p.ConsistencyScore,
		PreferredZones:          p.PreferredZones,
		IncentiveCompletionRate: p.IncentiveCompletionRate,
		LowConfidence:           p.LowConfidence,
	}
}

// ScheduleBlockResponse is one contiguous work interval on one day.
type ScheduleBlockResponse struct {
	Weekday   string `json:"weekday"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
}

// ScenarioResponse is one evaluated strategy archetype.
type ScenarioResponse struct {
	Archetype         string                  `json:"archetype"`
	Label             string                  `json:"label"`
	Schedule          []ScheduleBlockResponse `json:"schedule"`
	TotalHours        int                     `json:"total_hours"`
	ProjectedEarnings float64                 `json:"projected_earnings"`
	ImprovementPct    float64                 `json:"improvement_pct"`
	Feasibility       float64                 `json:"feasibility"`
	Description       string                  `json:"description"`
}

// CurrentPerformanceResponse is the baseline computed from history.
type CurrentPerformanceResponse struct {
	WeeklyEarnings  float64 `json:"weekly_earnings"`
	WeeklyHours     float64 `json:"weekly_hours"`
	WeeklyRides     float64 `json:"weekly_rides"`
	EfficiencyScore float64 `json:"efficiency_score"`
}

// OptimizationResponse is the full ranked result of one optimization run.
type OptimizationResponse struct {
	WorkerID              string                     `json:"worker_id"`
	Current               CurrentPerformanceResponse `json:"current_performance"`
	Scenarios             []ScenarioResponse         `json:"scenarios"`
	Recommended           string                     `json:"recommended"`
	NoFeasibleImprovement bool                       `json:"no_feasible_improvement"`
	LowConfidence         bool                       `json:"low_confidence"`
	Insights              []string                   `json:"insights"`
	SnapshotHash          string                     `json:"snapshot_hash"`
}

func FromOptimization(r *models.OptimizationResult) OptimizationResponse {
	scenarios := make([]ScenarioResponse, 0, len(r.Scenarios))
	for _, s := range r.Scenarios {
		scenarios = append(scenarios, fromScenario(s))
	}

	return OptimizationResponse{
		WorkerID: r.WorkerID,
		Current: CurrentPerformanceResponse{
			WeeklyEarnings:  r.Current.WeeklyEarnings,
			WeeklyHours:     r.Current.WeeklyHours,
			WeeklyRides:     r.Current.WeeklyRides,
			EfficiencyScore: r.Current.EfficiencyScore,
		},
		Scenarios:             scenarios,
		Recommended:           r.Recommended.String(),
		NoFeasibleImprovement: r.NoFeasibleImprovement,
		LowConfidence:         r.LowConfidence,
		Insights:              r.Insights,
		SnapshotHash:          r.SnapshotHash,
	}
}

func fromScenario(s models.OptimizationScenario) ScenarioResponse {
	blocks := make([]ScheduleBlockResponse, 0, len(s.Schedule.Blocks))
	for _, b := range s.Schedule.Blocks {
		blocks = append(blocks, ScheduleBlockResponse{
			Weekday:   b.Weekday.String(),
			StartHour: b.StartHour,
			EndHour:   b.EndHour,
		})
	}

	return ScenarioResponse{
		Archetype:         s.Archetype.String(),
		Label:             s.Label,
		Schedule:          blocks,
		TotalHours:        s.Schedule.TotalHours(),
		ProjectedEarnings: s.ProjectedEarnings,
		ImprovementPct:    s.ImprovementPct,
		Feasibility:       s.Feasibility,
		Description:       s.Description,
	}
}

func weekdayNames(days []time.Weekday) []string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return names
}
