package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Temutjin2k/driver-twin/internal/domain/types"
)

// ScheduleBlock is one contiguous work interval on one day.
// EndHour is exclusive: 17..19 means 17:00-19:00, two hours.
type ScheduleBlock struct {
	Weekday   time.Weekday `json:"weekday"`
	StartHour int          `json:"start_hour"`
	EndHour   int          `json:"end_hour"`
}

// Hours returns the block length in hours.
func (b ScheduleBlock) Hours() int {
	return b.EndHour - b.StartHour
}

func (b ScheduleBlock) String() string {
	return fmt.Sprintf("%s %02d:00-%02d:00", b.Weekday, b.StartHour, b.EndHour)
}

// WeeklySchedule is an ordered set of blocks across the week. Blocks are kept
// sorted by (weekday Mon-first, start hour) so serialization is deterministic
// and two runs over the same snapshot stay byte-identical.
type WeeklySchedule struct {
	Blocks []ScheduleBlock `json:"blocks"`
}

// NewWeeklySchedule sorts the blocks into canonical order.
func NewWeeklySchedule(blocks []ScheduleBlock) WeeklySchedule {
	sorted := make([]ScheduleBlock, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := types.WeekdayRank(sorted[i].Weekday), types.WeekdayRank(sorted[j].Weekday)
		if ri != rj {
			return ri < rj
		}
		return sorted[i].StartHour < sorted[j].StartHour
	})
	return WeeklySchedule{Blocks: sorted}
}

// TotalHours is computed, never stored.
func (s WeeklySchedule) TotalHours() int {
	total := 0
	for _, b := range s.Blocks {
		total += b.Hours()
	}
	return total
}

// BlocksOn returns the blocks scheduled for one weekday, in start order.
func (s WeeklySchedule) BlocksOn(d time.Weekday) []ScheduleBlock {
	var out []ScheduleBlock
	for _, b := range s.Blocks {
		if b.Weekday == d {
			out = append(out, b)
		}
	}
	return out
}

// HoursOn returns the total scheduled hours for one weekday.
func (s WeeklySchedule) HoursOn(d time.Weekday) int {
	total := 0
	for _, b := range s.BlocksOn(d) {
		total += b.Hours()
	}
	return total
}

// Days returns the distinct scheduled weekdays, Monday-first.
func (s WeeklySchedule) Days() []time.Weekday {
	seen := map[time.Weekday]bool{}
	var out []time.Weekday
	for _, b := range s.Blocks {
		if !seen[b.Weekday] {
			seen[b.Weekday] = true
			out = append(out, b.Weekday)
		}
	}
	return out
}

// EachHour calls fn for every scheduled hour in week order, passing the
// weekday, the hour of day and the cumulative hour index within that day
// (1-based). The simulator depends on this ordering for fatigue decay.
func (s WeeklySchedule) EachHour(fn func(day time.Weekday, hour, nthHourOfDay int)) {
	hoursSoFar := map[time.Weekday]int{}
	for _, b := range s.Blocks {
		for h := b.StartHour; h < b.EndHour; h++ {
			hoursSoFar[b.Weekday]++
			fn(b.Weekday, h, hoursSoFar[b.Weekday])
		}
	}
}

func (s WeeklySchedule) String() string {
	if len(s.Blocks) == 0 {
		return "no scheduled hours"
	}
	var parts []string
	for _, d := range s.Days() {
		var spans []string
		for _, b := range s.BlocksOn(d) {
			spans = append(spans, fmt.Sprintf("%02d:00-%02d:00", b.StartHour, b.EndHour))
		}
		parts = append(parts, fmt.Sprintf("%s %s", d, strings.Join(spans, ", ")))
	}
	return strings.Join(parts, "; ")
}
