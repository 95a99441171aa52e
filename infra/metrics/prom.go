package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/metrics"
)

// PromSink records leveling outcomes in Prometheus metrics.
type PromSink struct {
	tasks       *prometheus.CounterVec
	utilization *prometheus.GaugeVec
	runs        prometheus.Counter
}

// NewPromSink registers leveling metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	tasks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "leveling_task_events_total",
		Help: "Total number of per-task leveling outcomes",
	}, []string{"project_id", "scheduled"})
	utilization := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "leveling_resource_utilization_percent",
		Help: "Per-resource utilization over the scheduling window",
	}, []string{"project_id", "resource_id"})
	runs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "leveling_sink_runs_total",
		Help: "Number of run summaries recorded",
	})

	if err := reg.Register(tasks); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			tasks = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(utilization); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			utilization = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}

	return &PromSink{tasks: tasks, utilization: utilization, runs: runs}, nil
}

// RecordTaskSchedules increments the counter for each task outcome.
func (s *PromSink) RecordTaskSchedules(recs []coremetrics.TaskScheduleRecord) error {
	for _, r := range recs {
		s.tasks.WithLabelValues(r.ProjectID, strconv.FormatBool(r.Scheduled)).Inc()
	}
	return nil
}

// RecordRun counts run summaries.
func (s *PromSink) RecordRun(coremetrics.RunRecord) error {
	s.runs.Inc()
	return nil
}

// RecordUtilization sets the per-resource utilization gauges.
func (s *PromSink) RecordUtilization(recs []coremetrics.UtilizationRecord) error {
	for _, r := range recs {
		s.utilization.WithLabelValues(r.ProjectID, r.ResourceID).Set(r.Percent)
	}
	return nil
}
