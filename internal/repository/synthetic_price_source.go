package repository

import (
	"context"
	"hash/fnv"
	"math/rand"
)

// SyntheticPriceSource generates deterministic random-walk series for
// development and tests. The walk is seeded per symbol so paired assets get
// distinct legs, and the same symbol always yields the same series.
type SyntheticPriceSource struct {
	seed int64
}

func NewSyntheticPriceSource(seed int64) *SyntheticPriceSource {
	return &SyntheticPriceSource{seed: seed}
}

// Load returns exactly limit samples of a geometric random walk starting at
// 100 with 2% per-step volatility.
func (s *SyntheticPriceSource) Load(_ context.Context, asset string, limit int) ([]float64, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(asset))
	rng := rand.New(rand.NewSource(s.seed ^ int64(h.Sum64())))

	prices := make([]float64, limit)
	price := 100.0
	for i := 0; i < limit; i++ {
		price *= 1 + rng.NormFloat64()*0.02
		prices[i] = price
	}
	return prices, nil
}
