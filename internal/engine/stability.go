package engine

import "fmt"

// StabilityThreshold is the statistical convergence bound: the regime is
// considered stable once a smoothing round changes at most this fraction of
// positions.
const StabilityThreshold = 0.01

// HammingDistance counts the positions at which two equal-length series
// differ. It errors on a length mismatch rather than truncating.
func HammingDistance(a, b []float64) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: series must have the same length (%d vs %d)", ErrValidation, len(a), len(b))
	}
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d, nil
}

// CheckStability reports whether the Hamming distance is within the default
// stability threshold for a series of the given length.
func CheckStability(distance, length int) bool {
	return CheckStabilityAt(distance, length, StabilityThreshold)
}

// CheckStabilityAt is CheckStability with an explicit threshold fraction.
func CheckStabilityAt(distance, length int, threshold float64) bool {
	return float64(distance) <= float64(length)*threshold
}
