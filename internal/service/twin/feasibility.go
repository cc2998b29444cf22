package twin

import (
	"time"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
)

// scoreFeasibility estimates how likely the worker is to actually follow a
// schedule, on [0,1]. Four sub-scores, each on [0,1], combine by the
// configured weights:
//
//   - hour overlap: fraction of scheduled hours inside the preferred set
//   - day overlap: fraction of scheduled days among the peak days
//   - hour shift: how far scheduled hours sit from the nearest preferred hour
//   - overwork: how far the weekly total runs past the fatigue budget
//
// A low-confidence profile caps the score so a thin history can never make a
// drastic schedule look safe.
func scoreFeasibility(schedule models.WeeklySchedule, profile *models.BehavioralProfile, p Params) float64 {
	score := p.WeightHourOverlap*hourOverlap(schedule, profile) +
		p.WeightDayOverlap*dayOverlap(schedule, profile) +
		p.WeightHourShift*hourShiftScore(schedule, profile, p) +
		p.WeightOverwork*overworkScore(schedule, profile, p)

	score = clamp(score, 0, 1)

	if profile.LowConfidence && score > p.LowConfidenceCap {
		score = p.LowConfidenceCap
	}
	return score
}

func hourOverlap(schedule models.WeeklySchedule, profile *models.BehavioralProfile) float64 {
	total, matched := 0, 0
	schedule.EachHour(func(_ time.Weekday, hour, _ int) {
		total++
		if profile.PrefersHour(hour) {
			matched++
		}
	})
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}

func dayOverlap(schedule models.WeeklySchedule, profile *models.BehavioralProfile) float64 {
	days := schedule.Days()
	if len(days) == 0 {
		return 0
	}
	matched := 0
	for _, d := range days {
		if profile.PrefersDay(d) {
			matched++
		}
	}
	return float64(matched) / float64(len(days))
}

// hourShiftScore penalizes distance between scheduled hours and the nearest
// preferred hour. The average distance is normalized by ShiftScaleHours; at
// or beyond the scale the sub-score bottoms out at 0. No preferred hours at
// all means the distance is unknowable and the sub-score is neutral 0.5.
func hourShiftScore(schedule models.WeeklySchedule, profile *models.BehavioralProfile, p Params) float64 {
	if len(profile.PreferredHours) == 0 {
		return 0.5
	}

	total, distSum := 0, 0.0
	schedule.EachHour(func(_ time.Weekday, hour, _ int) {
		total++
		distSum += float64(nearestDistance(hour, profile.PreferredHours))
	})
	if total == 0 {
		return 0
	}

	avg := distSum / float64(total)
	return 1 - clamp(avg/p.ShiftScaleHours, 0, 1)
}

func nearestDistance(hour int, preferred []int) int {
	best := 24
	for _, ph := range preferred {
		d := hour - ph
		if d < 0 {
			d = -d
		}
		if d < best {
			best = d
		}
	}
	return best
}

// overworkScore penalizes weekly totals beyond threshold*7. Schedules inside
// the budget score a full 1.
func overworkScore(schedule models.WeeklySchedule, profile *models.BehavioralProfile, p Params) float64 {
	budget := profile.FatigueThresholdHours * 7
	excess := schedule.TotalHours() - budget
	if excess <= 0 {
		return 1
	}
	return 1 - clamp(float64(excess)/p.OverworkScaleHours, 0, 1)
}
