package geo

import "math"

// DefaultEpsilon is the nudge applied by RelativeCoords before truncating.
const DefaultEpsilon = 1e-9

// TruncateTowardZero converts x to an integer by discarding its fractional
// part, after first moving x by eps toward zero. Values carrying float noise
// just under an integer boundary therefore land below it, and an exact
// integer n >= 0 truncates to n-1 (n <= -1 truncates to n+1).
//
// Results for NaN or infinite x are unspecified.
func TruncateTowardZero(x, eps float64) int64 {
	if x >= 0 {
		return int64(math.Floor(x - eps))
	}
	return int64(math.Ceil(x + eps))
}
