// ABOUTME: Numeric helpers shared by the campus engine
// ABOUTME: Clamping, fixed-decimal rounding, and positive-integer coercion

package models

import "math"

// Clamp limits v to the inclusive range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampInt limits v to the inclusive range [min, max].
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// PositiveInt coerces v to an integer no smaller than min.
// Non-finite values collapse to min so malformed input cannot propagate.
func PositiveInt(v float64, min int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return min
	}
	n := int(math.Round(v))
	if n < min {
		return min
	}
	return n
}
