package engine

import (
	"fmt"

	"RegimeCast/internal/domain/models"
)

// Compose folds a list of equal-length series into one, left to right, per
// the blueprint's logic gate. AND/OR/XOR treat non-zero as true and produce
// {0,1}; SUM accumulates arithmetically; AVERAGE is a running pairwise mean
// (each fold step averages the accumulator with the next element, so for
// more than two inputs the result is recency-weighted rather than a true
// N-way mean).
//
// An empty list yields an empty series. A single-element list is returned
// unchanged, bypassing the mode entirely. An unknown mode is a
// configuration error.
func Compose(results [][]float64, mode models.Composition) ([]float64, error) {
	if len(results) == 0 {
		return []float64{}, nil
	}
	if len(results) == 1 {
		return results[0], nil
	}

	var fold func(a, b float64) float64
	switch mode {
	case models.CompositionAND:
		fold = func(a, b float64) float64 { return boolToFloat(a != 0 && b != 0) }
	case models.CompositionOR:
		fold = func(a, b float64) float64 { return boolToFloat(a != 0 || b != 0) }
	case models.CompositionXOR:
		fold = func(a, b float64) float64 { return boolToFloat((a != 0) != (b != 0)) }
	case models.CompositionAVERAGE:
		fold = func(a, b float64) float64 { return (a + b) / 2.0 }
	case models.CompositionSUM:
		fold = func(a, b float64) float64 { return a + b }
	default:
		return nil, fmt.Errorf("%w: unknown composition mode %q", ErrConfiguration, mode)
	}

	combined := make([]float64, len(results[0]))
	copy(combined, results[0])

	for _, next := range results[1:] {
		for i := range combined {
			combined[i] = fold(combined[i], next[i])
		}
	}

	return combined, nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
