package twin

import (
	"time"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
)

// projectEarnings estimates weekly earnings for a schedule under a profile.
// Each scheduled hour contributes
//
//	rate * surgeFactor * fatiguePenalty * peakDayBonus
//
// where surgeFactor scales the multiplier above baseline by the worker's
// responsiveness and fatiguePenalty decays the marginal hour once the day
// runs past the learned threshold. The result is never negative.
func projectEarnings(schedule models.WeeklySchedule, profile *models.BehavioralProfile, curve surgeCurve, p Params) float64 {
	total := 0.0
	schedule.EachHour(func(day time.Weekday, hour, nthHourOfDay int) {
		hourly := profile.AvgRatePerHour

		surge := 1 + profile.SurgeResponsiveness*(curve.At(hour)-1)
		if surge < 0 {
			surge = 0
		}
		hourly *= surge

		hourly *= fatiguePenalty(nthHourOfDay, profile.FatigueThresholdHours, p)

		if profile.PrefersDay(day) {
			hourly *= p.PeakDayBonus
		}

		total += hourly
	})

	if total < 0 {
		return 0
	}
	return total
}

// fatiguePenalty is 1.0 up to and including the threshold hour of the day,
// then decays linearly per excess hour down to the floor. Hours on different
// days never interact.
func fatiguePenalty(nthHourOfDay, thresholdHours int, p Params) float64 {
	if nthHourOfDay <= thresholdHours {
		return 1.0
	}
	excess := float64(nthHourOfDay - thresholdHours)
	penalty := 1 - p.FatigueDecayPerHour*excess
	if penalty < p.FatigueFloor {
		return p.FatigueFloor
	}
	return penalty
}
