package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.service.Metrics using Prometheus.
type Recorder struct {
	executions          *prometheus.CounterVec
	engineErrors        *prometheus.CounterVec
	executionDuration   *prometheus.HistogramVec
	stabilityIterations prometheus.Histogram
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		executions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "regimecast_executions_total",
				Help: "Total number of completed blueprint executions",
			},
			[]string{"composition"},
		),
		engineErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "regimecast_engine_errors_total",
				Help: "Total number of engine errors by taxonomy kind",
			},
			[]string{"kind"},
		),
		executionDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "regimecast_execution_duration_seconds",
				Help:    "Duration of blueprint executions in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"composition"},
		),
		stabilityIterations: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "regimecast_stability_iterations",
				Help:    "Smoothing rounds performed per stability run",
				Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34, 55, 100},
			},
		),
	}
}

// RecordExecution records a completed execution and its duration.
func (r *Recorder) RecordExecution(composition string, seconds float64) {
	r.executions.WithLabelValues(composition).Inc()
	r.executionDuration.WithLabelValues(composition).Observe(seconds)
}

// RecordEngineError records an engine error occurrence by kind.
func (r *Recorder) RecordEngineError(kind string) {
	r.engineErrors.WithLabelValues(kind).Inc()
}

// RecordStabilityIterations records the iteration count of one stability run.
func (r *Recorder) RecordStabilityIterations(n int) {
	r.stabilityIterations.Observe(float64(n))
}
