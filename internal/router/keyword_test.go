package router

import (
	"context"
	"testing"

	"RegimeCast/internal/domain/models"
)

func parse(t *testing.T, query string) models.ExecutionBlueprint {
	t.Helper()
	bp, err := NewKeywordRouter().ParseIntent(context.Background(), query)
	if err != nil {
		t.Fatalf("ParseIntent(%q): %v", query, err)
	}
	return bp
}

func TestParseIntentBreadth(t *testing.T) {
	bp := parse(t, "Show me market BREADTH across majors")
	if bp.Composition != models.CompositionSUM {
		t.Fatalf("composition = %q, want SUM", bp.Composition)
	}
	if len(bp.Assets) != 3 {
		t.Fatalf("assets = %v, want three majors", bp.Assets)
	}
	if bp.Steps[0].FunctionName != "price_above_sma" {
		t.Fatalf("function = %q", bp.Steps[0].FunctionName)
	}
}

func TestParseIntentSynthetic(t *testing.T) {
	for _, q := range []string{"synthetic pair view", "btc eth spread"} {
		bp := parse(t, q)
		if len(bp.Assets) != 1 || bp.Assets[0] != "BTC-ETH" {
			t.Fatalf("query %q: assets = %v, want [BTC-ETH]", q, bp.Assets)
		}
	}
}

func TestParseIntentTrend(t *testing.T) {
	bp := parse(t, "is btc in a trend")
	if bp.Steps[0].FunctionName != "sma_crossover" {
		t.Fatalf("function = %q, want sma_crossover", bp.Steps[0].FunctionName)
	}
	if bp.Steps[0].Args["short_window"] != 20 || bp.Steps[0].Args["long_window"] != 50 {
		t.Fatalf("unexpected args %v", bp.Steps[0].Args)
	}
	if bp.Composition != models.CompositionAND {
		t.Fatalf("composition = %q, want AND", bp.Composition)
	}
}

func TestParseIntentVolatility(t *testing.T) {
	for _, q := range []string{"volatility regime", "bollinger squeeze setup"} {
		bp := parse(t, q)
		if bp.Steps[0].FunctionName != "bollinger_squeeze" {
			t.Fatalf("query %q: function = %q", q, bp.Steps[0].FunctionName)
		}
	}
}

func TestParseIntentMomentum(t *testing.T) {
	bp := parse(t, "rsi momentum check")
	if len(bp.Steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(bp.Steps))
	}
	if bp.Steps[0].FunctionName != "rsi_overbought" || bp.Steps[1].FunctionName != "rsi_oversold" {
		t.Fatalf("unexpected steps %v", bp.Steps)
	}
	if bp.Composition != models.CompositionOR {
		t.Fatalf("composition = %q, want OR", bp.Composition)
	}
}

func TestParseIntentCombine(t *testing.T) {
	bp := parse(t, "combine my signals")
	if len(bp.Steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(bp.Steps))
	}
	if bp.Steps[0].FunctionName != "sma_crossover" || bp.Steps[1].FunctionName != "rsi_oversold" {
		t.Fatalf("unexpected steps %v", bp.Steps)
	}
	if bp.Composition != models.CompositionAND {
		t.Fatalf("composition = %q, want AND", bp.Composition)
	}
}

func TestParseIntentDefault(t *testing.T) {
	bp := parse(t, "what is happening")
	if bp.Steps[0].FunctionName != "sma_crossover" {
		t.Fatalf("function = %q, want sma_crossover", bp.Steps[0].FunctionName)
	}
	if len(bp.Assets) != 1 || bp.Assets[0] != "BTC" {
		t.Fatalf("assets = %v, want [BTC]", bp.Assets)
	}
	if bp.Timeframe != "1d" {
		t.Fatalf("timeframe = %q, want 1d", bp.Timeframe)
	}
}
