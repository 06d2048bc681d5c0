// Package metrics records report metrics with Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/madrasah-erp/finance/internal/application/adapter"
)

const namespace = "finance"

// PrometheusCollector implements adapter.ReportMetrics for Prometheus.
type PrometheusCollector struct {
	registry *prometheus.Registry

	generations        *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	cacheLookups       *prometheus.CounterVec
	eventPublishes     *prometheus.CounterVec
}

// NewPrometheusCollector creates a collector registered on its own registry.
func NewPrometheusCollector() (*PrometheusCollector, error) {
	pc := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_generations_total",
				Help:      "Total number of report generation requests per type and outcome",
			},
			[]string{"type", "outcome"},
		),
		generationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "report_generation_duration_seconds",
				Help:      "Report generation latency per type",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"type"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_list_cache_lookups_total",
				Help:      "Total number of report list cache lookups per result",
			},
			[]string{"result"},
		),
		eventPublishes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_events_published_total",
				Help:      "Total number of report events published per status",
			},
			[]string{"status"},
		),
	}

	if err := pc.register(); err != nil {
		return nil, err
	}
	return pc, nil
}

func (pc *PrometheusCollector) register() error {
	registered := []prometheus.Collector{
		pc.generations,
		pc.generationDuration,
		pc.cacheLookups,
		pc.eventPublishes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}

	for _, collector := range registered {
		if err := pc.registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// Handler serves the registry in the Prometheus exposition format.
func (pc *PrometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(pc.registry, promhttp.HandlerOpts{})
}

// ObserveGeneration records one report generation request.
func (pc *PrometheusCollector) ObserveGeneration(reportType, outcome string, duration time.Duration) {
	if reportType == "" {
		reportType = "unknown"
	}
	pc.generations.WithLabelValues(reportType, outcome).Inc()
	if outcome == adapter.OutcomeSuccess {
		pc.generationDuration.WithLabelValues(reportType).Observe(duration.Seconds())
	}
}

// RecordCacheLookup records a report list cache lookup.
func (pc *PrometheusCollector) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	pc.cacheLookups.WithLabelValues(result).Inc()
}

// RecordEventPublish records a report event publication attempt.
func (pc *PrometheusCollector) RecordEventPublish(success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	pc.eventPublishes.WithLabelValues(status).Inc()
}

// NoOpCollector discards every measurement.
type NoOpCollector struct{}

func (NoOpCollector) ObserveGeneration(string, string, time.Duration) {}

func (NoOpCollector) RecordCacheLookup(bool) {}

func (NoOpCollector) RecordEventPublish(bool) {}
