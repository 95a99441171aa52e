package metrics

import (
	"time"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/model"
)

// TaskScheduleRecord represents a per-task leveling outcome to be recorded.
type TaskScheduleRecord struct {
	RunID      string
	ProjectID  string
	TaskID     string
	TaskName   string
	Start      time.Time
	End        time.Time
	Hours      float64
	DelayDays  int
	Importance int
	Scheduled  bool
	Error      string
	Time       time.Time
}

// RunRecord captures the summary of a whole leveling run.
type RunRecord struct {
	RunID              string
	ProjectID          string
	TotalTasks         int
	ScheduledTasks     int
	TotalHours         float64
	AverageUtilization float64
	PeakUtilization    float64
	MaxDelayDays       int
	Duration           time.Duration
	Time               time.Time
}

// UtilizationRecord is a per-resource utilization sample for one run.
type UtilizationRecord struct {
	RunID      string
	ProjectID  string
	ResourceID string
	Available  float64
	Assigned   float64
	Percent    float64
	Time       time.Time
}

// MetricsSink records leveling outcomes for observability purposes.
type MetricsSink interface {
	RecordTaskSchedules(recs []TaskScheduleRecord) error
}

// RunRecorder records run summaries. Sinks implement it optionally.
type RunRecorder interface {
	RecordRun(rec RunRecord) error
}

// UtilizationRecorder records per-resource utilization samples.
type UtilizationRecorder interface {
	RecordUtilization(recs []UtilizationRecord) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordTaskSchedules([]TaskScheduleRecord) error { return nil }
func (NopSink) RecordRun(RunRecord) error                      { return nil }
func (NopSink) RecordUtilization([]UtilizationRecord) error    { return nil }

// TaskRecord builds a TaskScheduleRecord from a schedule.
func TaskRecord(runID, projectID string, s model.TaskSchedule, now time.Time) TaskScheduleRecord {
	return TaskScheduleRecord{
		RunID:      runID,
		ProjectID:  projectID,
		TaskID:     s.TaskID,
		TaskName:   s.TaskName,
		Start:      s.Start,
		End:        s.End,
		Hours:      s.AssignedHours,
		DelayDays:  s.DelayDays,
		Importance: s.Importance,
		Scheduled:  true,
		Time:       now,
	}
}
