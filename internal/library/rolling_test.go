package library

import (
	"math"
	"testing"
)

func TestRollingMean(t *testing.T) {
	got := rollingMean([]float64{1, 2, 3, 4}, 2)
	if !math.IsNaN(got[0]) {
		t.Fatalf("index 0 should be NaN for incomplete window, got %v", got[0])
	}
	want := []float64{math.NaN(), 1.5, 2.5, 3.5}
	for i := 1; i < len(want); i++ {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestRollingMeanPropagatesNaN(t *testing.T) {
	got := rollingMean([]float64{1, math.NaN(), 3, 4}, 2)
	if !math.IsNaN(got[1]) || !math.IsNaN(got[2]) {
		t.Fatalf("windows containing NaN must be NaN, got %v", got)
	}
	if got[3] != 3.5 {
		t.Fatalf("index 3: got %v want 3.5", got[3])
	}
}

func TestRollingStd(t *testing.T) {
	got := rollingStd([]float64{1, 2, 3, 4}, 2)
	if !math.IsNaN(got[0]) {
		t.Fatalf("index 0 should be NaN, got %v", got[0])
	}
	want := math.Sqrt(0.5)
	for i := 1; i < 4; i++ {
		if math.Abs(got[i]-want) > 1e-12 {
			t.Fatalf("index %d: got %v want %v", i, got[i], want)
		}
	}
}

func TestBackfill(t *testing.T) {
	nan := math.NaN()
	got := backfill([]float64{nan, nan, 3, nan, 5}, 9)
	want := []float64{3, 3, 3, 9, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestBackfillAllNaN(t *testing.T) {
	nan := math.NaN()
	got := backfill([]float64{nan, nan}, 7)
	for i, v := range got {
		if v != 7 {
			t.Fatalf("index %d: got %v want fallback 7", i, v)
		}
	}
}

func TestFillNaN(t *testing.T) {
	got := fillNaN([]float64{1, math.NaN(), 3}, 0)
	want := []float64{1, 0, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestArgOr(t *testing.T) {
	args := map[string]float64{"window": 7}
	if v := argOr(args, "window", 20); v != 7 {
		t.Fatalf("explicit arg: got %v want 7", v)
	}
	if v := argOr(args, "missing", 20); v != 20 {
		t.Fatalf("missing arg: got %v want default 20", v)
	}
	if v := argOr(nil, "any", 5); v != 5 {
		t.Fatalf("nil args: got %v want default 5", v)
	}
	if v := argIntOr(args, "window", 20); v != 7 {
		t.Fatalf("int arg: got %v want 7", v)
	}
}
