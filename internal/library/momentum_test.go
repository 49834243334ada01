package library

import "testing"

func TestRelativeStrengthRising(t *testing.T) {
	rsi := relativeStrength(ramp(10), 3)
	// Incomplete averaging windows read neutral.
	if rsi[0] != 50 || rsi[1] != 50 {
		t.Fatalf("leading positions should be 50, got %v %v", rsi[0], rsi[1])
	}
	// Pure gains saturate RSI once the window is complete.
	for i := 2; i < 10; i++ {
		if rsi[i] != 100 {
			t.Fatalf("index %d: got %v want 100", i, rsi[i])
		}
	}
}

func TestRelativeStrengthFlat(t *testing.T) {
	flat := make([]float64, 10)
	for i := range flat {
		flat[i] = 42
	}
	rsi := relativeStrength(flat, 3)
	for i, v := range rsi {
		if v != 50 {
			t.Fatalf("index %d: flat series should be neutral, got %v", i, v)
		}
	}
}

func TestRSIOverbought(t *testing.T) {
	got, err := RSIOverbought(ramp(10), map[string]float64{"period": 3, "threshold": 70})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{0, 0, 1, 1, 1, 1, 1, 1, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestRSIOversold(t *testing.T) {
	falling := make([]float64, 10)
	for i := range falling {
		falling[i] = float64(100 - i)
	}
	got, err := RSIOversold(falling, map[string]float64{"period": 3, "threshold": 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{0, 0, 1, 1, 1, 1, 1, 1, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestRSINeutralOnFlat(t *testing.T) {
	flat := make([]float64, 30)
	for i := range flat {
		flat[i] = 100
	}
	over, err := RSIOverbought(flat, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	under, err := RSIOversold(flat, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range flat {
		if over[i] != 0 || under[i] != 0 {
			t.Fatalf("index %d: neutral RSI should trigger neither side", i)
		}
	}
}
