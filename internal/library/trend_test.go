package library

import "testing"

func ramp(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	return xs
}

func assertBinary(t *testing.T, regime []float64, wantLen int) {
	t.Helper()
	if len(regime) != wantLen {
		t.Fatalf("regime length %d, want %d", len(regime), wantLen)
	}
	for i, v := range regime {
		if v != 0 && v != 1 {
			t.Fatalf("index %d: non-binary value %v", i, v)
		}
	}
}

func TestSMACrossover(t *testing.T) {
	prices := ramp(10)
	got, err := SMACrossover(prices, map[string]float64{"short_window": 2, "long_window": 3})
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

func TestSMACrossoverDefaults(t *testing.T) {
	got, err := SMACrossover(ramp(120), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertBinary(t, got, 120)
	// A strictly rising series keeps the short SMA above the long one once
	// both windows are complete.
	if got[119] != 1 {
		t.Fatalf("rising tail should be 1, got %v", got[119])
	}
}

func TestPriceAboveSMA(t *testing.T) {
	got, err := PriceAboveSMA(ramp(10), map[string]float64{"window": 3})
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

func TestPriceAboveSMAFlat(t *testing.T) {
	flat := make([]float64, 60)
	for i := range flat {
		flat[i] = 100
	}
	got, err := PriceAboveSMA(flat, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range got {
		if v != 0 {
			t.Fatalf("index %d: flat series should never be above its SMA, got %v", i, v)
		}
	}
}
