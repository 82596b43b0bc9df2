// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "roomsplit"

// Metrics holds the collectors for one registry.
type Metrics struct {
	registry *prometheus.Registry

	DebtComputations prometheus.Counter
	ComputeDuration  prometheus.Histogram
	DebtsReturned    prometheus.Histogram
	RPCRequests      *prometheus.CounterVec
	RPCDuration      *prometheus.HistogramVec
}

// New creates a registry with process/Go collectors and the roomsplit collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		DebtComputations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "debt_computations_total",
			Help:      "Number of debt computations performed.",
		}),
		ComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "debt_computation_duration_seconds",
			Help:      "Time spent computing debts from a ledger snapshot.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}),
		DebtsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "debts_returned",
			Help:      "Number of debts returned per computation.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		}),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC requests by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
	}

	reg.MustRegister(m.DebtComputations, m.ComputeDuration, m.DebtsReturned, m.RPCRequests, m.RPCDuration)
	return m
}

// ObserveDebtComputation records one debt computation.
func (m *Metrics) ObserveDebtComputation(d time.Duration, debts int) {
	m.DebtComputations.Inc()
	m.ComputeDuration.Observe(d.Seconds())
	m.DebtsReturned.Observe(float64(debts))
}

// ObserveRPC records one RPC outcome.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	m.RPCRequests.WithLabelValues(procedure, code).Inc()
	m.RPCDuration.WithLabelValues(procedure).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
