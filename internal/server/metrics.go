// Package server exposes an optional HTTP endpoint with Prometheus metrics
// and a health check for the duration of a sieve run. It is only started
// when --metrics-addr is configured.
package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/primecalc/internal/orchestration"
)

// Metrics aggregates the Prometheus collectors for a sieve run and serves
// them over HTTP. It implements orchestration.MetricsRecorder; every method
// is safe for concurrent use by worker goroutines.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	activeWorkers   prometheus.Gauge
	chunksCompleted prometheus.Counter
	primesFound     prometheus.Counter
	chunkDuration   prometheus.Histogram
	runDuration     prometheus.Gauge
	runPrimeCount   prometheus.Gauge
}

// Verify that Metrics implements orchestration.MetricsRecorder.
var _ orchestration.MetricsRecorder = (*Metrics)(nil)

// NewMetrics creates the collectors on a private registry, so repeated
// construction in tests does not trip duplicate-registration panics on the
// global default registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		activeWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "primecalc",
			Name:      "active_workers",
			Help:      "Number of sieve workers currently running.",
		}),
		chunksCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "primecalc",
			Name:      "chunks_completed_total",
			Help:      "Number of range chunks fully sieved.",
		}),
		primesFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "primecalc",
			Name:      "primes_found_total",
			Help:      "Number of primes discovered across all chunks.",
		}),
		chunkDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "primecalc",
			Name:      "chunk_duration_seconds",
			Help:      "Wall time spent sieving a single chunk.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "primecalc",
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last completed sieve-plus-sort phase.",
		}),
		runPrimeCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "primecalc",
			Name:      "run_prime_count",
			Help:      "Total primes found by the last completed run.",
		}),
	}
	reg.MustRegister(m.activeWorkers, m.chunksCompleted, m.primesFound, m.chunkDuration, m.runDuration, m.runPrimeCount)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// Handler returns the HTTP handler serving the /metrics payload.
func (m *Metrics) Handler() http.Handler { return m.handler }

// WorkerStarted increments the active worker gauge.
func (m *Metrics) WorkerStarted() { m.activeWorkers.Inc() }

// WorkerFinished decrements the active worker gauge.
func (m *Metrics) WorkerFinished() { m.activeWorkers.Dec() }

// ChunkCompleted records one finished chunk.
func (m *Metrics) ChunkCompleted(primesFound int, d time.Duration) {
	m.chunksCompleted.Inc()
	m.primesFound.Add(float64(primesFound))
	m.chunkDuration.Observe(d.Seconds())
}

// RunCompleted records the aggregated outcome of the whole run.
func (m *Metrics) RunCompleted(primeCount int, elapsed time.Duration) {
	m.runPrimeCount.Set(float64(primeCount))
	m.runDuration.Set(elapsed.Seconds())
}
