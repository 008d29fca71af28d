// Package mathutil provides small numeric helpers for the flex solver:
// clamping, interpolation, and proportional
// distribution of free space across weighted flex items.
package mathutil

import "math"

// ClampF64 constrains x to stay within the range [lo, hi].
func ClampF64(x, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return math.Min(math.Max(x, lo), hi)
}

// MaxF64 returns the greater of two doubles.
func MaxF64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// MinF64 returns the lesser of two doubles.
func MinF64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Lerp performs linear interpolation between a and b using t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DistributeProportional divides total across weights proportionally,
// returning total*weight[i]/sum(weights). Weights that are all zero yield
// an all-zero distribution; callers are expected to have already guarded
// against that case when it matters (e.g. CSS grow-factor flooring).
func DistributeProportional(total float64, weights []float64) []float64 {
	out := make([]float64, len(weights))
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return out
	}
	for i, w := range weights {
		out[i] = total * (w / sum)
	}
	return out
}
