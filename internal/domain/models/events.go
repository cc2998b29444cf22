package models

import "time"

// TripCompletedMessage is the ingestion event published by the ride platform
// when a trip finishes. The consumer turns it into an ActivityRecord plus a
// daily rollup update before the twin ever runs.
type TripCompletedMessage struct {
	WorkerID     string    `json:"worker_id"`
	StartTime    time.Time `json:"start_time"`
	DurationMins float64   `json:"duration_mins"`
	NetEarnings  float64   `json:"net_earnings"`
	Zone         string    `json:"zone"`
}

// OptimizationCompletedMessage notifies downstream consumers (the scheduling
// orchestrator, notification services) that a fresh optimization is available.
type OptimizationCompletedMessage struct {
	WorkerID          string  `json:"worker_id"`
	Recommended       string  `json:"recommended"`
	ProjectedEarnings float64 `json:"projected_earnings"`
	ImprovementPct    float64 `json:"improvement_pct"`
	Feasibility       float64 `json:"feasibility"`
	LowConfidence     bool    `json:"low_confidence"`
	SnapshotHash      string  `json:"snapshot_hash"`
}
