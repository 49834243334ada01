package library

// SMACrossover returns 1 where the short SMA is above the long SMA, else 0.
// Args: short_window (default 20), long_window (default 50). Leading
// positions without a full window are backfilled from the first complete
// value so the output keeps the input's length.
func SMACrossover(prices []float64, args map[string]float64) ([]float64, error) {
	shortWindow := argIntOr(args, "short_window", 20)
	longWindow := argIntOr(args, "long_window", 50)

	shortSMA := backfill(rollingMean(prices, shortWindow), 0)
	longSMA := backfill(rollingMean(prices, longWindow), 0)

	regime := make([]float64, len(prices))
	for i := range prices {
		if shortSMA[i] > longSMA[i] {
			regime[i] = 1
		}
	}
	return regime, nil
}

// PriceAboveSMA returns 1 where the price is above its SMA, else 0.
// Args: window (default 50).
func PriceAboveSMA(prices []float64, args map[string]float64) ([]float64, error) {
	window := argIntOr(args, "window", 50)

	sma := backfill(rollingMean(prices, window), 0)

	regime := make([]float64, len(prices))
	for i := range prices {
		if prices[i] > sma[i] {
			regime[i] = 1
		}
	}
	return regime, nil
}
