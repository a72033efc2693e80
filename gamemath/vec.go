package gamemath

import "math"

// Length returns the magnitude of the vector (x, y).
func Length(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Normalize scales (x, y) to unit length. The zero vector stays zero.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// ClampMagnitude limits the magnitude of (x, y) to max. Shorter vectors
// pass through unmodified so analog stick values keep their precision.
func ClampMagnitude(x, y, max float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l <= max || l == 0 {
		return x, y
	}
	return x / l * max, y / l * max
}

// ApplyDeadzone zeroes (x, y) when its magnitude is below the threshold.
// Above the threshold the value passes through unmodified.
func ApplyDeadzone(x, y, deadzone float64) (float64, float64) {
	if math.Hypot(x, y) < deadzone {
		return 0, 0
	}
	return x, y
}
