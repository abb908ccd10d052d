// Package metrics records assertion outcomes as Prometheus metrics
// and writes them in the text exposition format, ready for the
// node_exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives the outcome of every evaluated assertion and
// suite.
type Recorder interface {
	// RecordAssertion records one assertion evaluation.
	RecordAssertion(suite, assertionType string, passed bool)
	// RecordSuite records a finished suite run.
	RecordSuite(suite string, duration time.Duration, failed int)
}

// NoopRecorder discards everything. It is used when no metrics
// file is configured.
type NoopRecorder struct{}

func (NoopRecorder) RecordAssertion(_, _ string, _ bool)          {}
func (NoopRecorder) RecordSuite(_ string, _ time.Duration, _ int) {}

// Collector implements Recorder on a private Prometheus registry.
type Collector struct {
	registry   *prometheus.Registry
	assertions *prometheus.CounterVec
	runs       *prometheus.CounterVec
	duration   *prometheus.GaugeVec
	failed     *prometheus.GaugeVec
	lastRun    *prometheus.GaugeVec
	now        func() time.Time
}

// NewCollector creates a Collector with its metrics registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		assertions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "matchcheck",
			Name:      "assertions_total",
			Help:      "Assertions evaluated, by suite, type and status.",
		}, []string{"suite", "type", "status"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "matchcheck",
			Name:      "suite_runs_total",
			Help:      "Suite evaluations.",
		}, []string{"suite"}),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "matchcheck",
			Name:      "suite_duration_seconds",
			Help:      "Time spent on the last evaluation of a suite.",
		}, []string{"suite"}),
		failed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "matchcheck",
			Name:      "suite_failed_assertions",
			Help:      "Failed assertions in the last evaluation of a suite.",
		}, []string{"suite"}),
		lastRun: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "matchcheck",
			Name:      "suite_last_run_timestamp_seconds",
			Help:      "Unix time of the last evaluation of a suite.",
		}, []string{"suite"}),
		now: time.Now,
	}
	c.registry.MustRegister(c.assertions, c.runs, c.duration, c.failed, c.lastRun)
	return c
}

func (c *Collector) RecordAssertion(suite, assertionType string, passed bool) {
	status := "failed"
	if passed {
		status = "passed"
	}
	c.assertions.WithLabelValues(suite, assertionType, status).Inc()
}

func (c *Collector) RecordSuite(suite string, duration time.Duration, failed int) {
	c.runs.WithLabelValues(suite).Inc()
	c.duration.WithLabelValues(suite).Set(duration.Seconds())
	c.failed.WithLabelValues(suite).Set(float64(failed))
	c.lastRun.WithLabelValues(suite).Set(float64(c.now().Unix()))
}

// Registry exposes the underlying registry, e.g. for a /metrics
// handler.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteFile atomically writes all metrics to path in the text
// exposition format.
func (c *Collector) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
