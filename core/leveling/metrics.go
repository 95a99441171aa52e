package leveling

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	runDuration    prometheus.Histogram
	tasksProcessed *prometheus.CounterVec
	runsTotal      prometheus.Counter
	delayGauge     prometheus.Gauge
)

// newCollectors creates new metric collectors.
func newCollectors() (prometheus.Histogram, *prometheus.CounterVec, prometheus.Counter, prometheus.Gauge) {
	dur := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "leveling_run_duration_seconds",
		Help:    "Wall time of a full resource leveling run",
		Buckets: prometheus.DefBuckets,
	})
	tasks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "leveling_tasks_total",
		Help: "Number of tasks processed by outcome",
	}, []string{"outcome"})
	runs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "leveling_runs_total",
		Help: "Number of leveling runs executed",
	})
	delay := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "leveling_max_delay_days",
		Help: "Maximum task delay observed in the most recent run",
	})
	return dur, tasks, runs, delay
}

func init() {
	runDuration, tasksProcessed, runsTotal, delayGauge = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers leveling metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(runDuration, tasksProcessed, runsTotal, delayGauge)
}

// ResetMetrics reinitializes metrics collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	runDuration, tasksProcessed, runsTotal, delayGauge = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
