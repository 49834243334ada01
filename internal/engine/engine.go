package engine

import (
	"context"
	"fmt"

	"RegimeCast/internal/domain/models"
	domsvc "RegimeCast/internal/domain/service"
)

const (
	provenanceSingle = "Executed via RegimeCast orchestrator v1.0"
	provenanceMulti  = provenanceSingle + " (Multi-Asset)"
)

// Smoother applies a noise-reduction transform to a regime series, returning
// a series of identical length. The default is majority voting over a
// 3-sample window.
type Smoother func(regime []float64, window int) []float64

// IterationObserver receives one snapshot per stability-loop round. Used by
// streaming boundaries; a nil observer is ignored.
type IterationObserver func(snapshot models.IterationSnapshot)

// Option configures an Engine.
type Option func(*Engine)

// WithDefaultAsset overrides the asset used when a blueprint names none.
func WithDefaultAsset(asset string) Option {
	return func(e *Engine) { e.defaultAsset = asset }
}

// WithSeriesLimit overrides how many samples are requested per asset.
func WithSeriesLimit(limit int) Option {
	return func(e *Engine) { e.seriesLimit = limit }
}

// WithSmoother overrides the smoothing transform and its window.
func WithSmoother(s Smoother, window int) Option {
	return func(e *Engine) {
		e.smoother = s
		e.smoothWindow = window
	}
}

// WithMaxIterationsCap overrides the hard upper bound on requested stability
// iterations.
func WithMaxIterationsCap(n int) Option {
	return func(e *Engine) { e.maxIterationsCap = n }
}

// WithStabilityThreshold overrides the stability threshold fraction.
func WithStabilityThreshold(threshold float64) Option {
	return func(e *Engine) { e.stabilityThreshold = threshold }
}

// Engine drives blueprint execution: it resolves assets, runs each step
// through the validation gate and the frozen registry, folds step outputs
// per asset, then folds across assets. It holds no per-call state, so one
// Engine serves concurrent queries with zero coordination.
type Engine struct {
	router   domsvc.IntentRouter
	registry *Registry
	resolver *AssetResolver
	gate     Gate

	defaultAsset string
	seriesLimit  int
	smoother     Smoother
	smoothWindow int

	maxIterationsCap   int
	stabilityThreshold float64
}

func New(router domsvc.IntentRouter, registry *Registry, resolver *AssetResolver, opts ...Option) *Engine {
	e := &Engine{
		router:             router,
		registry:           registry,
		resolver:           resolver,
		defaultAsset:       "BTC",
		seriesLimit:        100,
		smoothWindow:       3,
		maxIterationsCap:   100,
		stabilityThreshold: StabilityThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FunctionNames lists the frozen registry's function names.
func (e *Engine) FunctionNames() []string {
	return e.registry.Names()
}

// Execute parses the query into a blueprint and runs it to completion. Any
// failure anywhere aborts the entire call; no partial result is returned.
func (e *Engine) Execute(ctx context.Context, query string) (models.ExecutionResult, error) {
	blueprint, err := e.router.ParseIntent(ctx, query)
	if err != nil {
		return models.ExecutionResult{}, fmt.Errorf("parse intent: %w", err)
	}

	assets := blueprint.Assets
	if len(assets) == 0 {
		assets = []string{e.defaultAsset}
	}

	perAsset := make([][]float64, 0, len(assets))
	for _, asset := range assets {
		regime, err := e.executeAsset(ctx, asset, blueprint)
		if err != nil {
			return models.ExecutionResult{}, err
		}
		perAsset = append(perAsset, regime)
	}

	final, err := Compose(perAsset, blueprint.Composition)
	if err != nil {
		return models.ExecutionResult{}, err
	}

	provenance := provenanceSingle
	if multiAsset(assets) {
		provenance = provenanceMulti
	}

	return models.ExecutionResult{
		Regime:     final,
		Blueprint:  blueprint,
		Provenance: provenance,
	}, nil
}

// multiAsset reports whether an execution touched more than one underlying
// asset: either several blueprint assets, or a synthetic pair whose two legs
// are fetched separately.
func multiAsset(assets []string) bool {
	if len(assets) > 1 {
		return true
	}
	for _, asset := range assets {
		if _, _, synthetic := splitPair(asset); synthetic {
			return true
		}
	}
	return false
}

// executeAsset resolves one asset's series and runs every blueprint step
// through the gate and the registry, folding the step outputs into that
// asset's regime.
func (e *Engine) executeAsset(ctx context.Context, asset string, blueprint models.ExecutionBlueprint) ([]float64, error) {
	prices, err := e.resolver.Resolve(ctx, asset, e.seriesLimit)
	if err != nil {
		return nil, err
	}

	stepOutputs := make([][]float64, 0, len(blueprint.Steps))
	for _, step := range blueprint.Steps {
		fn, err := e.registry.Lookup(step.FunctionName)
		if err != nil {
			return nil, err
		}

		if err := e.gate.PreCheck(step.FunctionName, prices); err != nil {
			return nil, err
		}

		regime, err := fn.Compute(prices, step.Args)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrExecution, step.FunctionName, err)
		}

		if err := e.gate.PostCheck(step.FunctionName, regime, len(prices)); err != nil {
			return nil, err
		}

		stepOutputs = append(stepOutputs, regime)
	}

	return Compose(stepOutputs, blueprint.Composition)
}

// RunUntilStable executes the query once, then repeatedly smooths the regime
// until the stability predicate holds or the stop hook fires. The stop hook
// caps the loop at maxIterations regardless of convergence, so termination
// is always guaranteed.
func (e *Engine) RunUntilStable(ctx context.Context, query string, maxIterations int) (models.StableResult, error) {
	return e.RunUntilStableObserved(ctx, query, maxIterations, nil)
}

// RunUntilStableObserved is RunUntilStable with a per-iteration observer.
// The history of snapshots is scoped to this call and discarded on return.
func (e *Engine) RunUntilStableObserved(ctx context.Context, query string, maxIterations int, observe IterationObserver) (models.StableResult, error) {
	result, err := e.Execute(ctx, query)
	if err != nil {
		return models.StableResult{}, err
	}

	smooth := e.smoother
	if smooth == nil {
		smooth = passthroughSmoother
	}
	if maxIterations > e.maxIterationsCap {
		maxIterations = e.maxIterationsCap
	}

	history := [][]float64{result.Regime}

	for k := 0; k < maxIterations; k++ {
		prev := history[len(history)-1]
		next := smooth(prev, e.smoothWindow)

		distance, err := HammingDistance(prev, next)
		if err != nil {
			return models.StableResult{}, err
		}
		stable := CheckStabilityAt(distance, len(prev), e.stabilityThreshold)

		history = append(history, next)

		if observe != nil {
			observe(models.IterationSnapshot{
				Iteration: k + 1,
				Distance:  distance,
				Stable:    stable,
				Regime:    next,
			})
		}

		// The stop hook's exact-zero criterion and the percentage-based
		// stability predicate are evaluated independently; either ends
		// the loop.
		if e.gate.ShouldStop(k+1, maxIterations, distance) {
			break
		}
		if stable {
			break
		}
	}

	iterations := len(history) - 1
	return models.StableResult{
		Regime:        history[len(history)-1],
		Iterations:    iterations,
		InitialRegime: history[0],
		Blueprint:     result.Blueprint,
		Provenance:    fmt.Sprintf("Recursive execution stable after %d iterations", iterations),
	}, nil
}

func passthroughSmoother(regime []float64, _ int) []float64 {
	return regime
}
