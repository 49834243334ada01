package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	pkgch "RegimeCast/pkg/clickhouse"
	applogger "RegimeCast/pkg/logger"
)

// CHPriceSource loads close-price series from a ClickHouse candles table.
type CHPriceSource struct {
	db        *sql.DB
	table     string
	timeframe string
	l         *applogger.Logger
}

func NewCHPriceSource(ch *pkgch.Client, table, timeframe string) *CHPriceSource {
	return &CHPriceSource{db: ch.DB(), table: table, timeframe: timeframe}
}

// SetLogger injects a structured logger.
func (s *CHPriceSource) SetLogger(l *applogger.Logger) { s.l = l }

// Load returns the latest limit closes for the symbol in chronological
// order. Fewer stored rows than requested is an error: the engine's
// contract is the full requested length or nothing.
func (s *CHPriceSource) Load(ctx context.Context, asset string, limit int) ([]float64, error) {
	start := time.Now()
	const qtpl = `
        SELECT close
        FROM %s
        WHERE symbol = ? AND tf = ?
        ORDER BY bucket DESC
        LIMIT ?
    `
	q := fmt.Sprintf(qtpl, s.table)
	rows, err := s.db.QueryContext(ctx, q, asset, s.timeframe, limit)
	if err != nil {
		if s.l != nil {
			s.l.Error("clickhouse load_prices query error",
				applogger.String("table", s.table),
				applogger.String("symbol", asset),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("load prices: %w", err)
	}
	defer rows.Close()

	closes := make([]float64, 0, limit)
	for rows.Next() {
		var c float64
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan close: %w", err)
		}
		closes = append(closes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load prices rows: %w", err)
	}
	if len(closes) < limit {
		return nil, fmt.Errorf("insufficient history for %s: have %d, need %d", asset, len(closes), limit)
	}

	// Newest-first from the query; the engine wants chronological order.
	for i, j := 0, len(closes)-1; i < j; i, j = i+1, j-1 {
		closes[i], closes[j] = closes[j], closes[i]
	}

	if s.l != nil {
		s.l.Debug("clickhouse load_prices ok",
			applogger.String("symbol", asset),
			applogger.Int("n", len(closes)),
			applogger.Duration("took", time.Since(start)),
		)
	}
	return closes, nil
}
