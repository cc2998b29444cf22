package twin

// Params are the tuning constants of the twin. Every scoring weight and
// decay rate lives here rather than in the algorithm bodies, so deployments
// can retune without touching the invariant-bearing code paths.
type Params struct {
	// Learner
	PreferredHoursCount int // top-N hours kept as the preferred set
	PeakDaysCount       int // top-N weekdays kept as peak days
	DefaultFatigueHours int // fatigue ceiling when no decline is observed
	MinSessions         int // distinct active days required for high confidence

	// Scenario generation
	EarlyShiftOffsetHours int

	// Earnings simulation
	FatigueDecayPerHour float64 // marginal rate lost per hour past the threshold
	FatigueFloor        float64 // decay never drops the multiplier below this
	PeakDayBonus        float64 // multiplier for blocks on learned peak days

	// Feasibility scoring
	WeightHourOverlap  float64
	WeightDayOverlap   float64
	WeightHourShift    float64
	WeightOverwork     float64
	ShiftScaleHours    float64 // hour-shift distance that zeroes the shift sub-score
	OverworkScaleHours float64 // excess hours that zero the overwork sub-score
	LowConfidenceCap   float64 // feasibility ceiling for low-confidence profiles

	// Ranking
	MinFeasibility float64 // acceptability bar for the recommendation
}

// DefaultParams returns the tuning the property tests are written against.
func DefaultParams() Params {
	return Params{
		PreferredHoursCount: 5,
		PeakDaysCount:       3,
		DefaultFatigueHours: 8,
		MinSessions:         5,

		EarlyShiftOffsetHours: 2,

		FatigueDecayPerHour: 0.05,
		FatigueFloor:        0.5,
		PeakDayBonus:        1.15,

		WeightHourOverlap:  0.40,
		WeightDayOverlap:   0.25,
		WeightHourShift:    0.20,
		WeightOverwork:     0.15,
		ShiftScaleHours:    6,
		OverworkScaleHours: 10,
		LowConfidenceCap:   0.5,

		MinFeasibility: 0.3,
	}
}
