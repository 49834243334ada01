package usecase

import (
	"context"
	"errors"
	"time"

	"RegimeCast/internal/domain/models"
	domsvc "RegimeCast/internal/domain/service"
	"RegimeCast/internal/engine"
	applogger "RegimeCast/pkg/logger"
)

// Orchestrator is the boundary-facing usecase around the execution engine.
// It adds structured logging, metrics, and audit events; the engine itself
// stays free of those concerns. Metrics and audit are optional (nil-safe).
type Orchestrator struct {
	engine  *engine.Engine
	logger  *applogger.Logger
	metrics domsvc.Metrics
	audit   domsvc.AuditPublisher
}

func NewOrchestrator(eng *engine.Engine, logger *applogger.Logger) *Orchestrator {
	return &Orchestrator{engine: eng, logger: logger}
}

// SetMetrics injects a metrics recorder.
func (o *Orchestrator) SetMetrics(m domsvc.Metrics) { o.metrics = m }

// SetAuditPublisher injects an audit event publisher.
func (o *Orchestrator) SetAuditPublisher(p domsvc.AuditPublisher) { o.audit = p }

// Execute runs a single blueprint execution for the query.
func (o *Orchestrator) Execute(ctx context.Context, query string) (models.ExecutionResult, error) {
	start := time.Now()

	result, err := o.engine.Execute(ctx, query)
	if err != nil {
		o.recordError(err)
		o.logger.Error("execute failed",
			applogger.String("query", query),
			applogger.Error(err),
		)
		return models.ExecutionResult{}, err
	}

	o.recordExecution(result.Blueprint, start)
	o.publishAudit(ctx, query, result.Blueprint, len(result.Regime), 0, false, start)
	o.logger.Info("execute ok",
		applogger.String("composition", string(result.Blueprint.Composition)),
		applogger.Int("assets", len(result.Blueprint.Assets)),
		applogger.Int("series_len", len(result.Regime)),
		applogger.Duration("took", time.Since(start)),
	)
	return result, nil
}

// RunUntilStable runs the recursive stability loop for the query.
func (o *Orchestrator) RunUntilStable(ctx context.Context, query string, maxIterations int) (models.StableResult, error) {
	return o.RunUntilStableObserved(ctx, query, maxIterations, nil)
}

// RunUntilStableObserved is RunUntilStable with a per-iteration observer for
// streaming boundaries.
func (o *Orchestrator) RunUntilStableObserved(ctx context.Context, query string, maxIterations int, observe engine.IterationObserver) (models.StableResult, error) {
	start := time.Now()

	result, err := o.engine.RunUntilStableObserved(ctx, query, maxIterations, observe)
	if err != nil {
		o.recordError(err)
		o.logger.Error("run until stable failed",
			applogger.String("query", query),
			applogger.Int("max_iterations", maxIterations),
			applogger.Error(err),
		)
		return models.StableResult{}, err
	}

	o.recordExecution(result.Blueprint, start)
	if o.metrics != nil {
		o.metrics.RecordStabilityIterations(result.Iterations)
	}
	o.publishAudit(ctx, query, result.Blueprint, len(result.Regime), result.Iterations, true, start)
	o.logger.Info("run until stable ok",
		applogger.String("composition", string(result.Blueprint.Composition)),
		applogger.Int("iterations", result.Iterations),
		applogger.Int("series_len", len(result.Regime)),
		applogger.Duration("took", time.Since(start)),
	)
	return result, nil
}

// FunctionNames lists the frozen registry's function names.
func (o *Orchestrator) FunctionNames() []string {
	return o.engine.FunctionNames()
}

func (o *Orchestrator) recordExecution(bp models.ExecutionBlueprint, start time.Time) {
	if o.metrics == nil {
		return
	}
	o.metrics.RecordExecution(string(bp.Composition), time.Since(start).Seconds())
}

func (o *Orchestrator) recordError(err error) {
	if o.metrics == nil {
		return
	}
	o.metrics.RecordEngineError(errorKind(err))
}

func (o *Orchestrator) publishAudit(ctx context.Context, query string, bp models.ExecutionBlueprint, seriesLen, iterations int, stable bool, start time.Time) {
	if o.audit == nil {
		return
	}
	event := models.AuditEvent{
		Query:        query,
		Composition:  bp.Composition,
		Assets:       bp.Assets,
		SeriesLength: seriesLen,
		Iterations:   iterations,
		Stable:       stable,
		DurationMS:   time.Since(start).Milliseconds(),
		Timestamp:    time.Now(),
	}
	if err := o.audit.PublishExecution(ctx, event); err != nil {
		o.logger.Warn("audit publish failed", applogger.Error(err))
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, engine.ErrConfiguration):
		return "configuration"
	case errors.Is(err, engine.ErrValidation):
		return "validation"
	case errors.Is(err, engine.ErrDataUnavailable):
		return "data_unavailable"
	case errors.Is(err, engine.ErrExecution):
		return "execution"
	default:
		return "internal"
	}
}
