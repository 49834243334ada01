package repository

import (
	"context"
	"testing"
)

func TestSyntheticLoadDeterministic(t *testing.T) {
	src := NewSyntheticPriceSource(42)

	a, err := src.Load(context.Background(), "BTC", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := src.Load(context.Background(), "BTC", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != 100 || len(b) != 100 {
		t.Fatalf("lengths %d and %d, want 100", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: repeated loads differ (%v vs %v)", i, a[i], b[i])
		}
	}
}

func TestSyntheticLoadPerSymbolSeries(t *testing.T) {
	src := NewSyntheticPriceSource(42)

	btc, _ := src.Load(context.Background(), "BTC", 50)
	eth, _ := src.Load(context.Background(), "ETH", 50)

	same := true
	for i := range btc {
		if btc[i] != eth[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("distinct symbols must produce distinct series")
	}
}

func TestSyntheticLoadPositivePrices(t *testing.T) {
	src := NewSyntheticPriceSource(7)
	prices, err := src.Load(context.Background(), "SOL", 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range prices {
		if p <= 0 {
			t.Fatalf("index %d: non-positive price %v", i, p)
		}
	}
}
