package library

import "math"

// relativeStrength computes the RSI series over the given period. Positions
// without a full averaging window read as the neutral 50.
func relativeStrength(prices []float64, period int) []float64 {
	gains := make([]float64, len(prices))
	losses := make([]float64, len(prices))
	for i := 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	avgGain := rollingMean(gains, period)
	avgLoss := rollingMean(losses, period)

	rsi := make([]float64, len(prices))
	for i := range prices {
		g, l := avgGain[i], avgLoss[i]
		switch {
		case math.IsNaN(g) || math.IsNaN(l):
			rsi[i] = 50
		case l == 0 && g == 0:
			rsi[i] = 50
		case l == 0:
			rsi[i] = 100
		default:
			rs := g / l
			rsi[i] = 100 - 100/(1+rs)
		}
	}
	return rsi
}

// RSIOverbought returns 1 where RSI exceeds the threshold, else 0.
// Args: period (default 14), threshold (default 70).
func RSIOverbought(prices []float64, args map[string]float64) ([]float64, error) {
	period := argIntOr(args, "period", 14)
	threshold := argOr(args, "threshold", 70)

	rsi := relativeStrength(prices, period)
	regime := make([]float64, len(prices))
	for i, v := range rsi {
		if v > threshold {
			regime[i] = 1
		}
	}
	return regime, nil
}

// RSIOversold returns 1 where RSI is below the threshold, else 0.
// Args: period (default 14), threshold (default 30).
func RSIOversold(prices []float64, args map[string]float64) ([]float64, error) {
	period := argIntOr(args, "period", 14)
	threshold := argOr(args, "threshold", 30)

	rsi := relativeStrength(prices, period)
	regime := make([]float64, len(prices))
	for i, v := range rsi {
		if v < threshold {
			regime[i] = 1
		}
	}
	return regime, nil
}
