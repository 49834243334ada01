package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// mapSource serves canned series and counts loads per asset.
type mapSource struct {
	series map[string][]float64
	loads  map[string]int
}

func newMapSource(series map[string][]float64) *mapSource {
	return &mapSource{series: series, loads: make(map[string]int)}
}

func (s *mapSource) Load(_ context.Context, asset string, limit int) ([]float64, error) {
	s.loads[asset]++
	prices, ok := s.series[asset]
	if !ok {
		return nil, fmt.Errorf("no data for %s", asset)
	}
	if len(prices) > limit {
		prices = prices[len(prices)-limit:]
	}
	return prices, nil
}

func TestResolveDirect(t *testing.T) {
	src := newMapSource(map[string][]float64{"BTC": {1, 2, 3}})
	r := NewAssetResolver(src)

	got, err := r.Resolve(context.Background(), "BTC", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("unexpected series %v", got)
	}
}

func TestResolveSyntheticPairDifference(t *testing.T) {
	src := newMapSource(map[string][]float64{
		"A": {10, 20, 30},
		"B": {1, 2, 3},
	})
	r := NewAssetResolver(src)

	got, err := r.Resolve(context.Background(), "A-B", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{9, 18, 27}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
	if src.loads["A"] != 1 || src.loads["B"] != 1 {
		t.Fatalf("expected one load per leg, got %v", src.loads)
	}
}

func TestResolveFetchFailureIsDataUnavailable(t *testing.T) {
	src := newMapSource(map[string][]float64{"A": {1, 2}})
	r := NewAssetResolver(src)

	if _, err := r.Resolve(context.Background(), "MISSING", 2); !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected data unavailable, got %v", err)
	}
	if _, err := r.Resolve(context.Background(), "A-MISSING", 2); !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected data unavailable for failed leg, got %v", err)
	}
}

func TestResolveLegLengthMismatch(t *testing.T) {
	src := newMapSource(map[string][]float64{
		"A": {1, 2, 3},
		"B": {1, 2},
	})
	r := NewAssetResolver(src)

	_, err := r.Resolve(context.Background(), "A-B", 5)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected data unavailable on leg mismatch, got %v", err)
	}
}

func TestSplitPair(t *testing.T) {
	cases := []struct {
		in        string
		synthetic bool
	}{
		{"A-B", true},
		{"BTC-ETH", true},
		{"BTC", false},
		{"A - B", false},
		{"-B", false},
		{"A-", false},
	}
	for _, tc := range cases {
		if _, _, got := splitPair(tc.in); got != tc.synthetic {
			t.Fatalf("splitPair(%q) synthetic=%v, want %v", tc.in, got, tc.synthetic)
		}
	}
}
