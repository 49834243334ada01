package service

import (
	"context"

	"RegimeCast/internal/domain/models"
)

// IntentRouter turns a natural-language query into an execution blueprint.
// The router's output is treated as opaque by the engine; a parse failure is
// fatal to the call.
type IntentRouter interface {
	ParseIntent(ctx context.Context, query string) (models.ExecutionBlueprint, error)
}

// PriceSource loads a price series for an asset. Implementations must return
// exactly limit samples or fail; partial series are never returned.
type PriceSource interface {
	Load(ctx context.Context, asset string, limit int) ([]float64, error)
}

// RegimeFunction maps a price series to a binary regime series of identical
// length restricted to {0,1}. Implementations are pure and safe for
// unlimited concurrent callers.
type RegimeFunction interface {
	Compute(prices []float64, args map[string]float64) ([]float64, error)
}

// RegimeFunc adapts a plain function to RegimeFunction.
type RegimeFunc func(prices []float64, args map[string]float64) ([]float64, error)

func (f RegimeFunc) Compute(prices []float64, args map[string]float64) ([]float64, error) {
	return f(prices, args)
}

// AuditPublisher receives execution audit events at the boundary. A nil
// publisher disables auditing; publish failures never fail the call.
type AuditPublisher interface {
	PublishExecution(ctx context.Context, event models.AuditEvent) error
}

// Metrics records engine-level counters and timings.
type Metrics interface {
	RecordExecution(composition string, seconds float64)
	RecordEngineError(kind string)
	RecordStabilityIterations(n int)
}
