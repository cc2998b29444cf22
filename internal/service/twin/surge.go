package twin

import (
	"sort"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
)

// surgeCurve is the historical average surge multiplier per hour of day,
// averaged across zones. Hours without data read as baseline 1.0.
type surgeCurve map[int]float64

func buildSurgeCurve(entries []models.SurgeEntry) surgeCurve {
	sums := map[int]float64{}
	counts := map[int]int{}
	for _, e := range entries {
		if e.Hour < 0 || e.Hour > 23 || e.Multiplier < 0 {
			continue
		}
		sums[e.Hour] += e.Multiplier
		counts[e.Hour]++
	}

	curve := make(surgeCurve, len(sums))
	for h, sum := range sums {
		curve[h] = sum / float64(counts[h])
	}
	return curve
}

// At returns the average multiplier for an hour, baseline when unknown.
func (c surgeCurve) At(hour int) float64 {
	if m, ok := c[hour]; ok {
		return m
	}
	return 1.0
}

// topHours returns the n hours with the highest multiplier, highest first,
// earlier hour winning ties. Hours without surge data are not candidates.
func (c surgeCurve) topHours(n int) []int {
	hours := make([]int, 0, len(c))
	for h := range c {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		if c[hours[i]] != c[hours[j]] {
			return c[hours[i]] > c[hours[j]]
		}
		return hours[i] < hours[j]
	})
	if n < len(hours) {
		hours = hours[:n]
	}
	return hours
}
