package twin

import (
	"sort"
	"time"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
)

// Learn derives a behavioral profile from one worker's history snapshot.
// Pure function: same snapshot in, same profile out. A worker with no
// records gets safe defaults and LowConfidence=true instead of an error;
// downstream scoring is expected to cap feasibility for such profiles.
func Learn(history *models.ActivityHistory, p Params) *models.BehavioralProfile {
	profile := &models.BehavioralProfile{
		WorkerID:              history.WorkerID,
		FatigueThresholdHours: p.DefaultFatigueHours,
	}

	if history.Empty() {
		profile.LowConfidence = true
		return profile
	}

	hourCounts := map[int]int{}
	dayCounts := map[time.Weekday]int{}
	zoneCounts := map[string]int{}
	for _, r := range history.Records {
		hourCounts[r.Hour]++
		dayCounts[r.Weekday]++
		if r.Zone != "" {
			zoneCounts[r.Zone]++
		}
	}

	profile.PreferredHours = preferredHours(hourCounts, p.PreferredHoursCount)
	profile.PeakDays = peakDays(dayCounts, p.PeakDaysCount)
	profile.PreferredZones = preferredZones(zoneCounts, 5)

	var lowConfidence bool

	profile.AvgRatePerHour, lowConfidence = averageRate(history)

	resp, respLow := surgeResponsiveness(history, hourCounts)
	profile.SurgeResponsiveness = resp
	lowConfidence = lowConfidence || respLow

	profile.FatigueThresholdHours = fatigueThreshold(history.Records, p.DefaultFatigueHours)
	profile.ConsistencyScore = consistencyScore(history.Records)
	profile.IncentiveCompletionRate = incentiveCompletionRate(history.Incentives)

	if activeDays(history.Records) < p.MinSessions {
		lowConfidence = true
	}

	profile.LowConfidence = lowConfidence
	return profile
}

// preferredHours picks the top-N hours by activity count, earliest hour
// winning ties, and returns them sorted ascending.
func preferredHours(counts map[int]int, n int) []int {
	hours := make([]int, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		if counts[hours[i]] != counts[hours[j]] {
			return counts[hours[i]] > counts[hours[j]]
		}
		return hours[i] < hours[j]
	})
	if n < len(hours) {
		hours = hours[:n]
	}
	sort.Ints(hours)
	return hours
}

// peakDays picks the top-N weekdays by ride count, Monday-first order
// winning ties, and returns them Monday-first.
func peakDays(counts map[time.Weekday]int, n int) []time.Weekday {
	days := make([]time.Weekday, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		if counts[days[i]] != counts[days[j]] {
			return counts[days[i]] > counts[days[j]]
		}
		return types.WeekdayRank(days[i]) < types.WeekdayRank(days[j])
	})
	if n < len(days) {
		days = days[:n]
	}
	sort.Slice(days, func(i, j int) bool {
		return types.WeekdayRank(days[i]) < types.WeekdayRank(days[j])
	})
	return days
}

func preferredZones(counts map[string]int, n int) []string {
	zones := make([]string, 0, len(counts))
	for z := range counts {
		zones = append(zones, z)
	}
	sort.Slice(zones, func(i, j int) bool {
		if counts[zones[i]] != counts[zones[j]] {
			return counts[zones[i]] > counts[zones[j]]
		}
		return zones[i] < zones[j]
	})
	if n < len(zones) {
		zones = zones[:n]
	}
	return zones
}

// averageRate is total historical earnings over total historical hours.
// Daily aggregates are the authoritative totals when present; trip records
// are the fallback. Zero worked hours yields rate 0 and low confidence.
func averageRate(history *models.ActivityHistory) (rate float64, lowConfidence bool) {
	var earnings, hours float64

	if len(history.Daily) > 0 {
		for _, d := range history.Daily {
			earnings += d.TotalEarnings
			hours += d.TotalHours
		}
	} else {
		for _, r := range history.Records {
			earnings += r.NetEarnings
			hours += r.Hours()
		}
	}

	if hours <= 0 {
		return 0, true
	}
	return earnings / hours, false
}

// surgeResponsiveness correlates per-hour ride counts with the surge
// multiplier at those hours. Fewer than two hours with both activity and
// surge data leaves the correlation undefined: default 0, low confidence.
func surgeResponsiveness(history *models.ActivityHistory, hourCounts map[int]int) (float64, bool) {
	curve := buildSurgeCurve(history.SurgeTable)

	hours := make([]int, 0, len(hourCounts))
	for h := range hourCounts {
		if _, ok := curve[h]; ok {
			hours = append(hours, h)
		}
	}
	if len(hours) < 2 {
		return 0, true
	}
	sort.Ints(hours)

	rides := make([]float64, len(hours))
	multipliers := make([]float64, len(hours))
	for i, h := range hours {
		rides[i] = float64(hourCounts[h])
		multipliers[i] = curve[h]
	}

	return pearson(rides, multipliers), false
}

// fatigueThreshold finds the smallest session length (hours spanned in one
// day) at which average earnings-per-hour starts declining monotonically
// across at least the next two observed session lengths. When no such
// decline exists the configured ceiling is returned.
func fatigueThreshold(records []models.ActivityRecord, ceiling int) int {
	type session struct {
		earnings float64
		hours    float64
		minHour  int
		maxHour  int
	}

	sessions := map[string]*session{}
	for _, r := range records {
		key := r.StartTime.Format("2006-01-02")
		s, ok := sessions[key]
		if !ok {
			s = &session{minHour: r.Hour, maxHour: r.Hour}
			sessions[key] = s
		}
		s.earnings += r.NetEarnings
		s.hours += r.Hours()
		if r.Hour < s.minHour {
			s.minHour = r.Hour
		}
		if r.Hour > s.maxHour {
			s.maxHour = r.Hour
		}
	}

	// Average efficiency per observed session length.
	effSums := map[int]float64{}
	effCounts := map[int]int{}
	for _, s := range sessions {
		if s.hours <= 0 {
			continue
		}
		length := s.maxHour - s.minHour + 1
		effSums[length] += s.earnings / s.hours
		effCounts[length]++
	}

	lengths := make([]int, 0, len(effSums))
	for l := range effSums {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	eff := func(i int) float64 { return effSums[lengths[i]] / float64(effCounts[lengths[i]]) }

	for i := 0; i+2 < len(lengths); i++ {
		if eff(i) > eff(i+1) && eff(i+1) > eff(i+2) {
			return lengths[i]
		}
	}

	if ceiling <= 0 {
		ceiling = 8
	}
	return ceiling
}

// consistencyScore is 1/(1 + stddev(session start hours) + cv(daily ride
// counts)), clipped to [0,1]. Regular workers score close to 1.
func consistencyScore(records []models.ActivityRecord) float64 {
	firstHour := map[string]int{}
	rideCount := map[string]int{}
	for _, r := range records {
		key := r.StartTime.Format("2006-01-02")
		if h, ok := firstHour[key]; !ok || r.Hour < h {
			firstHour[key] = r.Hour
		}
		rideCount[key]++
	}

	days := make([]string, 0, len(firstHour))
	for d := range firstHour {
		days = append(days, d)
	}
	sort.Strings(days)

	starts := make([]float64, len(days))
	counts := make([]float64, len(days))
	for i, d := range days {
		starts[i] = float64(firstHour[d])
		counts[i] = float64(rideCount[d])
	}

	score := 1 / (1 + stdDev(starts) + coefficientOfVariation(counts))
	return clamp(score, 0, 1)
}

func incentiveCompletionRate(incentives []models.IncentiveRecord) float64 {
	if len(incentives) == 0 {
		return 0
	}
	sum := 0.0
	for _, inc := range incentives {
		sum += clamp(inc.CompletionRatio, 0, 1)
	}
	return sum / float64(len(incentives))
}

func activeDays(records []models.ActivityRecord) int {
	days := map[string]struct{}{}
	for _, r := range records {
		days[r.StartTime.Format("2006-01-02")] = struct{}{}
	}
	return len(days)
}
