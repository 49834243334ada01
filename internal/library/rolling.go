package library

import "math"

// Rolling-window helpers shared by the regime functions. Incomplete leading
// windows are marked NaN and resolved by an explicit fill, so every function
// still emits a value for every input position.

// rollingMean returns the trailing mean over window samples; positions with
// an incomplete window, or any NaN inside the window, are NaN.
func rollingMean(xs []float64, window int) []float64 {
	out := make([]float64, len(xs))
	for i := range xs {
		out[i] = windowStat(xs, i, window, func(w []float64) float64 {
			sum := 0.0
			for _, v := range w {
				sum += v
			}
			return sum / float64(len(w))
		})
	}
	return out
}

// rollingStd returns the trailing sample standard deviation over window
// samples, NaN rules as rollingMean.
func rollingStd(xs []float64, window int) []float64 {
	out := make([]float64, len(xs))
	for i := range xs {
		out[i] = windowStat(xs, i, window, func(w []float64) float64 {
			n := float64(len(w))
			if n < 2 {
				return math.NaN()
			}
			sum := 0.0
			for _, v := range w {
				sum += v
			}
			mean := sum / n
			ss := 0.0
			for _, v := range w {
				d := v - mean
				ss += d * d
			}
			return math.Sqrt(ss / (n - 1))
		})
	}
	return out
}

func windowStat(xs []float64, i, window int, stat func([]float64) float64) float64 {
	if window <= 0 || i < window-1 {
		return math.NaN()
	}
	w := xs[i-window+1 : i+1]
	for _, v := range w {
		if math.IsNaN(v) {
			return math.NaN()
		}
	}
	return stat(w)
}

// backfill replaces leading NaNs with the first non-NaN value, then replaces
// any remaining NaNs with fallback.
func backfill(xs []float64, fallback float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)

	first := math.NaN()
	for _, v := range out {
		if !math.IsNaN(v) {
			first = v
			break
		}
	}
	for i := range out {
		if !math.IsNaN(out[i]) {
			break
		}
		out[i] = first
	}
	for i := range out {
		if math.IsNaN(out[i]) {
			out[i] = fallback
		}
	}
	return out
}

// fillNaN replaces every NaN with fallback.
func fillNaN(xs []float64, fallback float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		if math.IsNaN(v) {
			out[i] = fallback
		} else {
			out[i] = v
		}
	}
	return out
}

// argOr reads a numeric argument with a default.
func argOr(args map[string]float64, key string, def float64) float64 {
	if args == nil {
		return def
	}
	if v, ok := args[key]; ok {
		return v
	}
	return def
}

func argIntOr(args map[string]float64, key string, def int) int {
	return int(argOr(args, key, float64(def)))
}
