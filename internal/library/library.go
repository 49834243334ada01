// Package library holds the frozen quantitative functions the engine's
// registry dispatches to. Every function maps a price series to a binary
// regime series of identical length; the engine's validation gate enforces
// that contract around each call.
package library

import domsvc "RegimeCast/internal/domain/service"

// Functions returns the frozen function set keyed by step name.
func Functions() map[string]domsvc.RegimeFunction {
	return map[string]domsvc.RegimeFunction{
		"sma_crossover":     domsvc.RegimeFunc(SMACrossover),
		"price_above_sma":   domsvc.RegimeFunc(PriceAboveSMA),
		"bollinger_squeeze": domsvc.RegimeFunc(BollingerSqueeze),
		"atr_expansion":     domsvc.RegimeFunc(ATRExpansion),
		"rsi_overbought":    domsvc.RegimeFunc(RSIOverbought),
		"rsi_oversold":      domsvc.RegimeFunc(RSIOversold),
	}
}
