package library

import "testing"

func TestBollingerSqueezeFlat(t *testing.T) {
	flat := make([]float64, 10)
	for i := range flat {
		flat[i] = 100
	}
	got, err := BollingerSqueeze(flat, map[string]float64{"window": 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Incomplete leading windows read as bandwidth 1, never a squeeze.
	if got[0] != 0 || got[1] != 0 {
		t.Fatalf("leading positions should be 0, got %v %v", got[0], got[1])
	}
	// Zero volatility is the tightest possible squeeze.
	for i := 2; i < 10; i++ {
		if got[i] != 1 {
			t.Fatalf("index %d: got %v want 1", i, got[i])
		}
	}
}

func TestBollingerSqueezeVolatile(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		if i%2 == 0 {
			prices[i] = 50
		} else {
			prices[i] = 150
		}
	}
	got, err := BollingerSqueeze(prices, map[string]float64{"window": 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range got {
		if v != 0 {
			t.Fatalf("index %d: whipsawing series should never squeeze, got %v", i, v)
		}
	}
}

func TestATRExpansionFlat(t *testing.T) {
	flat := make([]float64, 50)
	for i := range flat {
		flat[i] = 100
	}
	got, err := ATRExpansion(flat, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertBinary(t, got, 50)
	for i, v := range got {
		if v != 0 {
			t.Fatalf("index %d: zero volatility cannot expand, got %v", i, v)
		}
	}
}

func TestATRExpansionBinary(t *testing.T) {
	prices := make([]float64, 100)
	prices[0] = 100
	for i := 1; i < len(prices); i++ {
		step := 0.5
		if i > 60 {
			// Late volatility burst.
			if i%2 == 0 {
				step = 8
			} else {
				step = -7
			}
		}
		prices[i] = prices[i-1] + step
	}
	got, err := ATRExpansion(prices, map[string]float64{"window": 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertBinary(t, got, 100)
	expanded := false
	for _, v := range got[60:] {
		if v == 1 {
			expanded = true
			break
		}
	}
	if !expanded {
		t.Fatal("volatility burst should register as expansion")
	}
}
