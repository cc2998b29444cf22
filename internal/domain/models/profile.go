package models

import "time"

// BehavioralProfile is the statistical summary of one worker's demonstrated
// behavior. It is derived purely from an ActivityHistory snapshot and never
// mutated afterwards; a fresh profile is produced per invocation.
type BehavioralProfile struct {
	WorkerID string `json:"worker_id"`

	// PreferredHours are the hours of day (0..23, sorted ascending) where
	// the worker's historical activity concentrates.
	PreferredHours []int `json:"preferred_hours"`

	// PeakDays are the 2-3 weekdays with the highest historical ride count,
	// ordered Monday-first.
	PeakDays []time.Weekday `json:"peak_days"`

	// AvgRatePerHour = total historical earnings / total historical hours.
	AvgRatePerHour float64 `json:"avg_rate_per_hour"`

	// SurgeResponsiveness is the Pearson correlation between per-hour ride
	// counts and the surge multiplier at those hours. Range [-1, 1].
	SurgeResponsiveness float64 `json:"surge_responsiveness"`

	// FatigueThresholdHours is the session length after which marginal
	// earnings-per-hour was observed to decline. Always > 0.
	FatigueThresholdHours int `json:"fatigue_threshold_hours"`

	// ConsistencyScore in [0, 1]; higher means more regular start times and
	// daily volumes.
	ConsistencyScore float64 `json:"consistency_score"`

	// PreferredZones are the most frequent pickup zones, most active first.
	PreferredZones []string `json:"preferred_zones,omitempty"`

	// IncentiveCompletionRate is the mean completion ratio across bonus
	// program weeks, in [0, 1].
	IncentiveCompletionRate float64 `json:"incentive_completion_rate"`

	// LowConfidence marks profiles built from too little data to trust the
	// statistics. Downstream scoring caps feasibility instead of failing.
	LowConfidence bool `json:"low_confidence"`
}

// PrefersHour reports whether h is one of the learned preferred hours.
func (p *BehavioralProfile) PrefersHour(h int) bool {
	for _, ph := range p.PreferredHours {
		if ph == h {
			return true
		}
	}
	return false
}

// PrefersDay reports whether d is one of the learned peak days.
func (p *BehavioralProfile) PrefersDay(d time.Weekday) bool {
	for _, pd := range p.PeakDays {
		if pd == d {
			return true
		}
	}
	return false
}
