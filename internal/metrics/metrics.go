// Package metrics exposes Prometheus instrumentation for the pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the pipeline collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	pipelineRuns  *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
}

// New creates the metrics registry and collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pipelineRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "receptro_pipeline_runs_total",
				Help: "Number of pipeline runs",
			},
			[]string{"kind", "outcome"},
		),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "receptro_stage_duration_seconds",
				Help:    "Pipeline stage duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.pipelineRuns,
		m.stageDuration,
	)

	return m
}

// Registry returns the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// CountRun records a completed pipeline run. Safe on a nil receiver.
func (m *Metrics) CountRun(kind, outcome string) {
	if m == nil {
		return
	}
	m.pipelineRuns.WithLabelValues(kind, outcome).Inc()
}

// ObserveStage records a stage duration in seconds. Safe on a nil receiver.
func (m *Metrics) ObserveStage(stage string, seconds float64) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(seconds)
}
