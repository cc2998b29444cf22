package twin

import (
	"fmt"
	"sort"
	"time"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
)

// generateSchedule builds the candidate weekly schedule for one archetype.
// The switch is exhaustive over the closed archetype enum. Schedules that
// overflow the fatigue envelope are clamped, never discarded; the returned
// description carries the truncation note so the caller stays transparent
// about it.
func generateSchedule(a types.Archetype, profile *models.BehavioralProfile, curve surgeCurve, p Params) (models.WeeklySchedule, string) {
	var (
		schedule models.WeeklySchedule
		desc     string
	)

	switch a {
	case types.ArchetypeCurrentPattern:
		schedule = currentPatternSchedule(profile)
		desc = "Your demonstrated footprint: preferred hours on your usual days, idle hours removed."
	case types.ArchetypeEarlyShift:
		schedule = earlyShiftSchedule(profile, p.EarlyShiftOffsetHours)
		desc = fmt.Sprintf("Your usual blocks moved %d hours earlier to catch the morning market.", p.EarlyShiftOffsetHours)
	case types.ArchetypeSurgeFocus:
		schedule = surgeFocusSchedule(profile, curve)
		desc = "Hours relocated to the strongest historical surge windows on your busiest days."
	case types.ArchetypeFixedGrind:
		schedule = fixedGrindSchedule()
		desc = "A steady Monday-Friday routine with fixed morning and evening blocks."
	case types.ArchetypeWeekendFocus:
		schedule = weekendFocusSchedule()
		desc = "Work concentrated on Friday evening and the weekend."
	}

	clamped, truncated := clampToEnvelope(schedule, profile.FatigueThresholdHours)
	if truncated {
		desc += fmt.Sprintf(" Trimmed to your %dh/day fatigue envelope.", profile.FatigueThresholdHours)
	}

	return clamped, desc
}

// currentPatternSchedule reuses the learned preferred hours on the learned
// peak days verbatim. Hours with no historical value never make it into the
// preferred set, so nothing else needs removing.
func currentPatternSchedule(profile *models.BehavioralProfile) models.WeeklySchedule {
	var blocks []models.ScheduleBlock
	for _, day := range profile.PeakDays {
		blocks = append(blocks, hoursToBlocks(day, profile.PreferredHours)...)
	}
	return models.NewWeeklySchedule(blocks)
}

// earlyShiftSchedule shifts every current-pattern block earlier by the
// configured offset, clamped to the start of day.
func earlyShiftSchedule(profile *models.BehavioralProfile, offset int) models.WeeklySchedule {
	base := currentPatternSchedule(profile)

	blocks := make([]models.ScheduleBlock, 0, len(base.Blocks))
	for _, b := range base.Blocks {
		start := b.StartHour - offset
		if start < 0 {
			start = 0
		}
		end := start + b.Hours()
		if end > 24 {
			end = 24
		}
		if end > start {
			blocks = append(blocks, models.ScheduleBlock{Weekday: b.Weekday, StartHour: start, EndHour: end})
		}
	}
	return models.NewWeeklySchedule(blocks)
}

// surgeFocusSchedule relocates the worker's hours to the historically
// highest-surge hours on their peak days. The fatigue threshold bounds the
// hours placed per day. Workers without learned peak days get the classic
// high-demand Friday/Saturday pair.
func surgeFocusSchedule(profile *models.BehavioralProfile, curve surgeCurve) models.WeeklySchedule {
	days := profile.PeakDays
	if len(days) == 0 {
		days = []time.Weekday{time.Friday, time.Saturday}
	}

	hours := curve.topHours(profile.FatigueThresholdHours)
	if len(hours) == 0 {
		// No surge history at all: fall back to the evening rush.
		hours = []int{17, 18, 19, 20}
	}
	sort.Ints(hours)

	var blocks []models.ScheduleBlock
	for _, day := range days {
		blocks = append(blocks, hoursToBlocks(day, hours)...)
	}
	return models.NewWeeklySchedule(blocks)
}

// fixedGrindSchedule is deliberately independent of the profile: two fixed
// blocks every working day.
func fixedGrindSchedule() models.WeeklySchedule {
	weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

	var blocks []models.ScheduleBlock
	for _, day := range weekdays {
		blocks = append(blocks,
			models.ScheduleBlock{Weekday: day, StartHour: 9, EndHour: 12},
			models.ScheduleBlock{Weekday: day, StartHour: 16, EndHour: 19},
		)
	}
	return models.NewWeeklySchedule(blocks)
}

// weekendFocusSchedule concentrates the week on Friday evening plus the
// weekend; the envelope clamp sizes it to the fatigue threshold.
func weekendFocusSchedule() models.WeeklySchedule {
	blocks := []models.ScheduleBlock{
		{Weekday: time.Friday, StartHour: 16, EndHour: 23},
		{Weekday: time.Saturday, StartHour: 12, EndHour: 15},
		{Weekday: time.Saturday, StartHour: 18, EndHour: 23},
		{Weekday: time.Sunday, StartHour: 12, EndHour: 15},
		{Weekday: time.Sunday, StartHour: 17, EndHour: 20},
	}
	return models.NewWeeklySchedule(blocks)
}

// hoursToBlocks folds a sorted list of hours into contiguous blocks on one
// day: [17 18 19 21] becomes 17-20 and 21-22.
func hoursToBlocks(day time.Weekday, hours []int) []models.ScheduleBlock {
	if len(hours) == 0 {
		return nil
	}

	sorted := make([]int, len(hours))
	copy(sorted, hours)
	sort.Ints(sorted)

	var blocks []models.ScheduleBlock
	start := sorted[0]
	end := start + 1
	for _, h := range sorted[1:] {
		if h == end {
			end = h + 1
			continue
		}
		blocks = append(blocks, models.ScheduleBlock{Weekday: day, StartHour: start, EndHour: end})
		start = h
		end = h + 1
	}
	blocks = append(blocks, models.ScheduleBlock{Weekday: day, StartHour: start, EndHour: end})
	return blocks
}

// clampToEnvelope enforces the fatigue envelope: at most threshold hours on
// any single day and threshold*7 hours across the week. Overflowing blocks
// are shortened, trailing ones dropped. Reports whether anything was cut.
func clampToEnvelope(schedule models.WeeklySchedule, thresholdHours int) (models.WeeklySchedule, bool) {
	if thresholdHours <= 0 {
		thresholdHours = 1
	}
	weeklyBudget := thresholdHours * 7

	truncated := false
	dayHours := map[time.Weekday]int{}
	weekTotal := 0

	var blocks []models.ScheduleBlock
	for _, b := range schedule.Blocks {
		dayRoom := thresholdHours - dayHours[b.Weekday]
		weekRoom := weeklyBudget - weekTotal

		room := dayRoom
		if weekRoom < room {
			room = weekRoom
		}
		if room <= 0 {
			truncated = true
			continue
		}

		keep := b.Hours()
		if keep > room {
			keep = room
			truncated = true
		}

		kept := models.ScheduleBlock{Weekday: b.Weekday, StartHour: b.StartHour, EndHour: b.StartHour + keep}
		blocks = append(blocks, kept)
		dayHours[b.Weekday] += keep
		weekTotal += keep
	}

	return models.NewWeeklySchedule(blocks), truncated
}
