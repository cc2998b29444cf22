package twin

import "math"

// Small numeric helpers. The statistics here are simple enough that a
// dedicated numerics dependency would outweigh them.

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

// coefficientOfVariation returns stddev/mean, or 1 for a zero mean.
func coefficientOfVariation(xs []float64) float64 {
	m := mean(xs)
	if m == 0 {
		return 1
	}
	return stdDev(xs) / m
}

// pearson returns the linear correlation coefficient of the paired samples,
// or 0 when it is undefined (fewer than 2 pairs or zero variance).
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return 0
	}

	mx, my := mean(xs), mean(ys)

	var cov, vx, vy float64
	for i := 0; i < n; i++ {
		dx := xs[i] - mx
		dy := ys[i] - my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}

	if vx == 0 || vy == 0 {
		return 0
	}

	r := cov / math.Sqrt(vx*vy)

	// Guard against float drift outside the mathematical range.
	return clamp(r, -1, 1)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
