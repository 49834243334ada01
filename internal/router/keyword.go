// Package router provides a deterministic keyword-based intent router. It
// stands in wherever an LLM-backed router is unavailable and keeps test
// runs reproducible.
package router

import (
	"context"
	"strings"

	"RegimeCast/internal/domain/models"
	domsvc "RegimeCast/internal/domain/service"
)

type KeywordRouter struct{}

func NewKeywordRouter() *KeywordRouter { return &KeywordRouter{} }

// ParseIntent maps recognizable keywords to a fixed blueprint; anything else
// falls back to the default trend plan.
func (r *KeywordRouter) ParseIntent(_ context.Context, query string) (models.ExecutionBlueprint, error) {
	q := strings.ToLower(query)

	switch {
	case strings.Contains(q, "breadth"):
		return models.ExecutionBlueprint{
			Steps: []models.FunctionStep{
				{FunctionName: "price_above_sma", Args: map[string]float64{"window": 10}, Weight: 1},
			},
			Composition: models.CompositionSUM,
			Timeframe:   "1d",
			Assets:      []string{"BTC", "ETH", "SOL"},
			Description: "Market breadth across majors using Price Above SMA",
		}, nil

	case strings.Contains(q, "synthetic") || strings.Contains(q, "spread"):
		return models.ExecutionBlueprint{
			Steps: []models.FunctionStep{
				{FunctionName: "price_above_sma", Args: map[string]float64{"window": 10}, Weight: 1},
			},
			Composition: models.CompositionAND,
			Timeframe:   "1d",
			Assets:      []string{"BTC-ETH"},
			Description: "Synthetic spread strategy on the BTC-ETH difference series",
		}, nil

	case strings.Contains(q, "trend"):
		return models.ExecutionBlueprint{
			Steps: []models.FunctionStep{
				{FunctionName: "sma_crossover", Args: map[string]float64{"short_window": 20, "long_window": 50}, Weight: 1},
			},
			Composition: models.CompositionAND,
			Timeframe:   "1d",
			Assets:      []string{"BTC"},
			Description: "Trend following strategy using SMA Crossover (20/50)",
		}, nil

	case strings.Contains(q, "volatility") || strings.Contains(q, "squeeze"):
		return models.ExecutionBlueprint{
			Steps: []models.FunctionStep{
				{FunctionName: "bollinger_squeeze", Args: map[string]float64{"window": 20, "num_std": 2.0}, Weight: 1},
			},
			Composition: models.CompositionAND,
			Timeframe:   "1d",
			Assets:      []string{"BTC"},
			Description: "Volatility strategy using Bollinger Band Squeeze",
		}, nil

	case strings.Contains(q, "momentum") || strings.Contains(q, "rsi"):
		return models.ExecutionBlueprint{
			Steps: []models.FunctionStep{
				{FunctionName: "rsi_overbought", Args: map[string]float64{"threshold": 70}, Weight: 1},
				{FunctionName: "rsi_oversold", Args: map[string]float64{"threshold": 30}, Weight: 1},
			},
			// Trigger on either overbought or oversold.
			Composition: models.CompositionOR,
			Timeframe:   "1d",
			Assets:      []string{"BTC"},
			Description: "Momentum strategy using RSI (Overbought or Oversold)",
		}, nil

	case strings.Contains(q, "combine"):
		return models.ExecutionBlueprint{
			Steps: []models.FunctionStep{
				{FunctionName: "sma_crossover", Weight: 1},
				{FunctionName: "rsi_oversold", Weight: 1},
			},
			Composition: models.CompositionAND,
			Timeframe:   "1d",
			Assets:      []string{"BTC"},
			Description: "Combined strategy: SMA Crossover AND RSI Oversold",
		}, nil
	}

	return models.ExecutionBlueprint{
		Steps: []models.FunctionStep{
			{FunctionName: "sma_crossover", Weight: 1},
		},
		Composition: models.CompositionAND,
		Timeframe:   "1d",
		Assets:      []string{"BTC"},
		Description: "Default: SMA Crossover",
	}, nil
}

var _ domsvc.IntentRouter = (*KeywordRouter)(nil)
