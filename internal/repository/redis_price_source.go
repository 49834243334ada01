package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisPriceSource loads close-price series from Redis lists. Each symbol's
// closes live in one list keyed by symbol and timeframe, newest first
// (ingest side LPUSHes on each bar).
type RedisPriceSource struct {
	client    *redis.Client
	timeframe string
}

func NewRedisPriceSource(client *redis.Client, timeframe string) *RedisPriceSource {
	return &RedisPriceSource{client: client, timeframe: timeframe}
}

func (s *RedisPriceSource) key(asset string) string {
	return fmt.Sprintf("closes:%s:%s", asset, s.timeframe)
}

// Load returns the latest limit closes in chronological order, or fails when
// the list holds fewer entries than requested.
func (s *RedisPriceSource) Load(ctx context.Context, asset string, limit int) ([]float64, error) {
	vals, err := s.client.LRange(ctx, s.key(asset), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange %s: %w", s.key(asset), err)
	}
	if len(vals) < limit {
		return nil, fmt.Errorf("insufficient history for %s: have %d, need %d", asset, len(vals), limit)
	}

	closes := make([]float64, len(vals))
	for i, v := range vals {
		c, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close %q for %s: %w", v, asset, err)
		}
		// Reverse newest-first list order into chronological order.
		closes[len(vals)-1-i] = c
	}
	return closes, nil
}
