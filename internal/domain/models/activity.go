package models

import "time"

// ActivityRecord is one completed unit of work (a finished trip).
// Weekday and Hour are denormalized from StartTime when the record is loaded
// so the learner never touches time parsing.
type ActivityRecord struct {
	WorkerID     string    `json:"worker_id"`
	StartTime    time.Time `json:"start_time"`
	DurationMins float64   `json:"duration_mins"`
	NetEarnings  float64   `json:"net_earnings"`
	Weekday      time.Weekday
	Hour         int
	Zone         string `json:"zone"`
}

// Hours returns the record duration in hours.
func (r ActivityRecord) Hours() float64 {
	return r.DurationMins / 60.0
}

// DailyAggregate is the per-day rollup of a worker's activity.
type DailyAggregate struct {
	WorkerID      string    `json:"worker_id"`
	Date          time.Time `json:"date"`
	TotalEarnings float64   `json:"total_earnings"`
	TotalHours    float64   `json:"total_hours"`
	RideCount     int       `json:"ride_count"`
}

// SurgeEntry is a market rate multiplier for one hour of day in one zone.
// 1.0 means baseline rates.
type SurgeEntry struct {
	Hour       int     `json:"hour"`
	Zone       string  `json:"zone"`
	Multiplier float64 `json:"multiplier"`
}

// IncentiveRecord is one week of bonus-program participation.
type IncentiveRecord struct {
	WorkerID        string  `json:"worker_id"`
	WeekID          string  `json:"week_id"`
	CompletionRatio float64 `json:"completion_ratio"`
}

// ActivityHistory is the immutable snapshot the twin computes from.
// It is assembled once per invocation at the boundary; the core never
// reads anything else.
type ActivityHistory struct {
	WorkerID   string
	Records    []ActivityRecord
	Daily      []DailyAggregate
	SurgeTable []SurgeEntry
	Incentives []IncentiveRecord
}

// Empty reports whether the worker has no trip history at all.
func (h *ActivityHistory) Empty() bool {
	return len(h.Records) == 0
}
