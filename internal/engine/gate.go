package engine

import (
	"fmt"
	"math"
)

// Gate enforces the frozen function contract around every registry call and
// guards the stability loop's termination. All checks are pure; the only
// effect is the returned error.
type Gate struct{}

// PreCheck rejects a price series that is not a finite numeric sequence of
// length >= 2. Errors carry the step's function name.
func (Gate) PreCheck(funcName string, prices []float64) error {
	if err := validatePrices(prices); err != nil {
		return fmt.Errorf("%w: pre-check failed for %s: %v", ErrValidation, funcName, err)
	}
	return nil
}

// PostCheck rejects a regime series that does not match the input length or
// contains values outside {0,1}.
func (Gate) PostCheck(funcName string, regime []float64, inputLen int) error {
	if err := validateRegime(regime, inputLen); err != nil {
		return fmt.Errorf("%w: post-check failed for %s: %v", ErrValidation, funcName, err)
	}
	return nil
}

// ShouldStop is the stability loop's stop hook. It forces a stop once the
// iteration count reaches maxIterations, or when the raw Hamming distance is
// exactly zero. The zero criterion is independent of the percentage-based
// stability predicate evaluated alongside it.
func (Gate) ShouldStop(iteration, maxIterations, hammingDistance int) bool {
	if iteration >= maxIterations {
		return true
	}
	return hammingDistance == 0
}

func validatePrices(prices []float64) error {
	if len(prices) < 2 {
		return fmt.Errorf("series must have at least 2 data points, got %d", len(prices))
	}
	for i, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("series contains NaN or Inf at index %d", i)
		}
	}
	return nil
}

func validateRegime(regime []float64, inputLen int) error {
	if len(regime) != inputLen {
		return fmt.Errorf("output length (%d) does not match input length (%d)", len(regime), inputLen)
	}
	for i, v := range regime {
		if v != 0 && v != 1 {
			return fmt.Errorf("output must contain only binary values, got %v at index %d", v, i)
		}
	}
	return nil
}
