package metrics

import coremetrics "github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/metrics"

// MultiSink fans leveling records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordTaskSchedules forwards the records to all sinks, returning the
// first error encountered.
func (m *MultiSink) RecordTaskSchedules(recs []coremetrics.TaskScheduleRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordTaskSchedules(recs); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun forwards the run summary to sinks that support it.
func (m *MultiSink) RecordRun(rec coremetrics.RunRecord) error {
	for _, s := range m.Sinks {
		if rr, ok := s.(coremetrics.RunRecorder); ok {
			if err := rr.RecordRun(rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordUtilization forwards utilization samples to sinks that support them.
func (m *MultiSink) RecordUtilization(recs []coremetrics.UtilizationRecord) error {
	for _, s := range m.Sinks {
		if ur, ok := s.(coremetrics.UtilizationRecorder); ok {
			if err := ur.RecordUtilization(recs); err != nil {
				return err
			}
		}
	}
	return nil
}
