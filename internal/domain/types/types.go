package types

import "time"

// Enum for scheduling strategy archetypes. The set is closed: the scenario
// generator switches over every value, so adding one is a compile-time event.
type Archetype string

const (
	ArchetypeCurrentPattern Archetype = "CURRENT_PATTERN"
	ArchetypeEarlyShift     Archetype = "EARLY_SHIFT"
	ArchetypeSurgeFocus     Archetype = "RATE_SURGE_FOCUS"
	ArchetypeFixedGrind     Archetype = "FIXED_GRIND"
	ArchetypeWeekendFocus   Archetype = "WEEKEND_FOCUS"
)

// Archetypes lists every strategy in evaluation order.
// The order doubles as the final ranking tiebreaker, so it must stay stable.
func Archetypes() []Archetype {
	return []Archetype{
		ArchetypeCurrentPattern,
		ArchetypeEarlyShift,
		ArchetypeSurgeFocus,
		ArchetypeFixedGrind,
		ArchetypeWeekendFocus,
	}
}

func (a Archetype) String() string {
	return string(a)
}

// Label returns the human-readable name used in API responses and insights.
func (a Archetype) Label() string {
	switch a {
	case ArchetypeCurrentPattern:
		return "Current Pattern"
	case ArchetypeEarlyShift:
		return "Early Shift"
	case ArchetypeSurgeFocus:
		return "Surge Focus"
	case ArchetypeFixedGrind:
		return "Fixed Grind"
	case ArchetypeWeekendFocus:
		return "Weekend Focus"
	default:
		return string(a)
	}
}

// Enum for user roles carried in platform JWTs
type UserRole string

func (r UserRole) String() string {
	return string(r)
}

const (
	EarnerRole UserRole = "EARNER"
	AdminRole  UserRole = "ADMIN"
)

// WeekdayRank orders weekdays Mon..Sun (time.Weekday starts the week on Sunday).
// Used for peak-day tiebreaks and deterministic schedule ordering.
func WeekdayRank(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// WeekOrder lists the weekdays Monday first.
func WeekOrder() []time.Weekday {
	return []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
}
