package library

import "math"

// BollingerSqueeze returns 1 where the Bollinger band width relative to the
// SMA is below the squeeze threshold, marking low-volatility consolidation.
// Args: window (default 20), num_std (default 2), squeeze_threshold
// (default 0.05). Incomplete leading windows read as bandwidth 1 to avoid
// false positives at the start.
func BollingerSqueeze(prices []float64, args map[string]float64) ([]float64, error) {
	window := argIntOr(args, "window", 20)
	numStd := argOr(args, "num_std", 2.0)
	threshold := argOr(args, "squeeze_threshold", 0.05)

	sma := rollingMean(prices, window)
	std := rollingStd(prices, window)

	bandwidth := make([]float64, len(prices))
	for i := range prices {
		if math.IsNaN(sma[i]) || math.IsNaN(std[i]) {
			bandwidth[i] = math.NaN()
			continue
		}
		// (upper - lower) / sma with upper/lower = sma +/- numStd*std
		bandwidth[i] = (2 * numStd * std[i]) / sma[i]
	}
	bandwidth = fillNaN(bandwidth, 1.0)

	regime := make([]float64, len(prices))
	for i, bw := range bandwidth {
		if bw < threshold {
			regime[i] = 1
		}
	}
	return regime, nil
}

// ATRExpansion returns 1 where the rolling volatility of returns is above
// its own moving average, marking expanding volatility. Only close prices
// are available, so rolling return std stands in for ATR.
// Args: window (default 14).
func ATRExpansion(prices []float64, args map[string]float64) ([]float64, error) {
	window := argIntOr(args, "window", 14)

	returns := make([]float64, len(prices))
	returns[0] = math.NaN()
	for i := 1; i < len(prices); i++ {
		if prices[i-1] == 0 {
			returns[i] = math.NaN()
			continue
		}
		returns[i] = prices[i]/prices[i-1] - 1
	}

	volatility := rollingStd(returns, window)
	volatilitySMA := rollingMean(volatility, window*2)

	volatility = fillNaN(volatility, 0)
	volatilitySMA = fillNaN(volatilitySMA, 0)

	regime := make([]float64, len(prices))
	for i := range prices {
		if volatility[i] > volatilitySMA[i] {
			regime[i] = 1
		}
	}
	return regime, nil
}
