package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/metrics"
)

func TestPromSinkRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	recs := []coremetrics.TaskScheduleRecord{
		{ProjectID: "p1", TaskID: "a", Scheduled: true},
		{ProjectID: "p1", TaskID: "b", Scheduled: false},
	}
	if err := sink.RecordTaskSchedules(recs); err != nil {
		t.Fatalf("record tasks: %v", err)
	}
	rr, ok := sink.(coremetrics.RunRecorder)
	if !ok {
		t.Fatalf("prom sink should record runs")
	}
	if err := rr.RecordRun(coremetrics.RunRecord{RunID: "r1"}); err != nil {
		t.Fatalf("record run: %v", err)
	}
	ur := sink.(coremetrics.UtilizationRecorder)
	if err := ur.RecordUtilization([]coremetrics.UtilizationRecord{
		{ProjectID: "p1", ResourceID: "e1", Percent: 42},
	}); err != nil {
		t.Fatalf("record utilization: %v", err)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) == 0 {
		t.Fatalf("expected metrics registered")
	}
}

func TestPromSinkDoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("first: %v", err)
	}
	// Re-registering on the same registry must reuse existing collectors.
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("second: %v", err)
	}
}
