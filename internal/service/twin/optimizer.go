package twin

import (
	"fmt"
	"sort"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
)

// baselinePerformance computes the current weekly numbers straight from
// history, no simulation involved. Daily aggregates are authoritative;
// without them trips are grouped by calendar date.
func baselinePerformance(history *models.ActivityHistory) models.CurrentPerformance {
	var (
		earnings []float64
		hours    []float64
		rides    []float64
	)

	if len(history.Daily) > 0 {
		for _, d := range history.Daily {
			earnings = append(earnings, d.TotalEarnings)
			hours = append(hours, d.TotalHours)
			rides = append(rides, float64(d.RideCount))
		}
	} else {
		type day struct {
			earnings float64
			hours    float64
			rides    float64
		}
		byDate := map[string]*day{}
		for _, r := range history.Records {
			key := r.StartTime.Format("2006-01-02")
			d, ok := byDate[key]
			if !ok {
				d = &day{}
				byDate[key] = d
			}
			d.earnings += r.NetEarnings
			d.hours += r.Hours()
			d.rides++
		}
		for _, d := range byDate {
			earnings = append(earnings, d.earnings)
			hours = append(hours, d.hours)
			rides = append(rides, d.rides)
		}
	}

	perf := models.CurrentPerformance{
		WeeklyEarnings: mean(earnings) * 7,
		WeeklyHours:    mean(hours) * 7,
		WeeklyRides:    mean(rides) * 7,
	}
	if perf.WeeklyHours > 0 {
		perf.EfficiencyScore = perf.WeeklyEarnings / perf.WeeklyHours
	}
	return perf
}

// rankScenarios orders scenarios best-first and picks the recommendation:
// highest projected earnings wins, feasibility breaks ties, and the fixed
// archetype order breaks exact draws so ranking stays deterministic. The
// recommendation is the best scenario clearing the feasibility bar; when
// none does, the current pattern is recommended and the result is flagged.
func rankScenarios(result *models.OptimizationResult, p Params) {
	order := map[types.Archetype]int{}
	for i, a := range types.Archetypes() {
		order[a] = i
	}

	sort.SliceStable(result.Scenarios, func(i, j int) bool {
		si, sj := result.Scenarios[i], result.Scenarios[j]
		if si.ProjectedEarnings != sj.ProjectedEarnings {
			return si.ProjectedEarnings > sj.ProjectedEarnings
		}
		if si.Feasibility != sj.Feasibility {
			return si.Feasibility > sj.Feasibility
		}
		return order[si.Archetype] < order[sj.Archetype]
	})

	result.Recommended = ""
	for _, s := range result.Scenarios {
		if s.Feasibility >= p.MinFeasibility {
			result.Recommended = s.Archetype
			break
		}
	}
	if result.Recommended == "" {
		result.Recommended = types.ArchetypeCurrentPattern
		result.NoFeasibleImprovement = true
	}
}

// improvementPct is the earnings delta relative to the baseline week. A zero
// baseline makes the ratio meaningless, so it reads as 0 rather than +Inf.
func improvementPct(projected, baseline float64) float64 {
	if baseline <= 0 {
		return 0
	}
	return (projected - baseline) / baseline * 100
}

// buildInsights renders the human-readable summary lines for a ranked result.
func buildInsights(result *models.OptimizationResult, profile *models.BehavioralProfile) []string {
	var insights []string

	rec := result.RecommendedScenario()
	if rec == nil {
		return insights
	}

	if result.NoFeasibleImprovement {
		insights = append(insights, "No alternative schedule cleared the feasibility bar; sticking with your current pattern is the safest call.")
	} else if rec.ImprovementPct > 0 {
		insights = append(insights, fmt.Sprintf("%s could lift weekly earnings by %.1f%% to %.2f.", rec.Label, rec.ImprovementPct, rec.ProjectedEarnings))
	} else {
		insights = append(insights, fmt.Sprintf("%s is the strongest option at %.2f per week.", rec.Label, rec.ProjectedEarnings))
	}

	if delta := rec.Schedule.TotalHours() - int(result.Current.WeeklyHours+0.5); delta != 0 {
		verb := "more"
		if delta < 0 {
			verb = "fewer"
			delta = -delta
		}
		insights = append(insights, fmt.Sprintf("The recommended week schedules %d %s hours than you currently work.", delta, verb))
	}

	if extra := daysOutsidePeak(rec, profile); extra > 0 {
		insights = append(insights, fmt.Sprintf("It adds work on %d day(s) outside your usual pattern.", extra))
	}

	if result.LowConfidence {
		insights = append(insights, "Projections are based on limited history; treat them as rough estimates.")
	}

	return insights
}

func daysOutsidePeak(s *models.OptimizationScenario, profile *models.BehavioralProfile) int {
	extra := 0
	for _, d := range s.Schedule.Days() {
		if !profile.PrefersDay(d) {
			extra++
		}
	}
	return extra
}
