// Package metrics exposes Prometheus instrumentation for recomputations and
// change events. Observe functions are no-ops until Init is called.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "bankroll_"

	ResultSuccess = "success"
	ResultError   = "error"

	SourceTrigger = "trigger"
	SourceManual  = "manual"
	SourceRead    = "read"
	SourceWrite   = "write"
	SourceCLI     = "cli"
)

var (
	registerOnce sync.Once

	recomputeTotal    *prometheus.CounterVec
	recomputeLatency  *prometheus.HistogramVec
	recomputeInFlight prometheus.Gauge

	triggerEvents *prometheus.CounterVec

	exportTotal *prometheus.CounterVec
)

// Init registers the collectors with the default registry.
func Init() {
	registerOnce.Do(func() {
		recomputeTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "recompute_total",
				Help: "Total financial state recomputations by source and result",
			},
			[]string{"source", "result"},
		)
		recomputeLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "recompute_latency_seconds",
				Help:    "Recomputation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		)
		recomputeInFlight = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "recompute_in_flight",
				Help: "Recomputations currently running",
			},
		)
		triggerEvents = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "trigger_events_total",
				Help: "Document change events received by collection and outcome",
			},
			[]string{"collection", "outcome"},
		)
		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Financial state exports by result",
			},
			[]string{"result"},
		)

		prometheus.MustRegister(
			recomputeTotal,
			recomputeLatency,
			recomputeInFlight,
			triggerEvents,
			exportTotal,
		)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// StartRecompute marks a recomputation as running and returns the function that
// records its outcome.
func StartRecompute(source string) func(result string) {
	if source == "" {
		source = SourceManual
	}
	if recomputeInFlight != nil {
		recomputeInFlight.Inc()
	}
	start := time.Now()
	return func(result string) {
		if recomputeInFlight != nil {
			recomputeInFlight.Dec()
		}
		ObserveRecompute(source, result, time.Since(start))
	}
}

// ObserveRecompute records a recomputation's duration and result.
func ObserveRecompute(source, result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if recomputeTotal != nil {
		recomputeTotal.WithLabelValues(source, result).Inc()
	}
	if recomputeLatency != nil {
		recomputeLatency.WithLabelValues(source).Observe(duration.Seconds())
	}
}

// IncTriggerEvent counts a change event. outcome is "recomputed", "ignored" or "failed".
func IncTriggerEvent(collection, outcome string) {
	if collection == "" {
		collection = "unknown"
	}
	if triggerEvents != nil {
		triggerEvents.WithLabelValues(collection, outcome).Inc()
	}
}

// IncExport counts an export.
func IncExport(result string) {
	if exportTotal != nil {
		exportTotal.WithLabelValues(result).Inc()
	}
}
