package mathutil

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// FloorMod returns x mod m with the sign of m, so the result is always in
// [0, m) for positive m, even when x is negative.
func FloorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// Wrap maps v into the half-open range [min, max).
func Wrap(v, min, max float64) float64 {
	w := FloorMod(v-min, max-min) + min
	// Adding a tiny negative remainder to the range can round up onto max.
	if w >= max {
		w = min
	}
	return w
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
