package utils

import "math"

// ToPointer returns a pointer to the given value.
func ToPointer[T any](value T) *T {
	return &value
}

// Round2 rounds a display value to 2 decimal places. The engine itself keeps
// full float64 precision; rounding only happens at the delivery boundary.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
