package library

// SmoothRegime applies majority-vote smoothing over a centered window to
// reduce regime noise. Series shorter than the window are returned
// unchanged. The output always matches the input length.
func SmoothRegime(regime []float64, window int) []float64 {
	if len(regime) < window {
		return regime
	}

	result := make([]float64, len(regime))
	for i := range regime {
		start := i - window/2
		if start < 0 {
			start = 0
		}
		end := i + window/2 + 1
		if end > len(regime) {
			end = len(regime)
		}

		sum := 0.0
		for _, v := range regime[start:end] {
			sum += v
		}
		if sum > float64(end-start)/2 {
			result[i] = 1
		} else {
			result[i] = 0
		}
	}
	return result
}
