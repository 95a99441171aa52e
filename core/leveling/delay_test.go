package leveling

import (
	"testing"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/model"
)

func TestAnalyzeDelaysSortsDescending(t *testing.T) {
	schedules := map[string]model.TaskSchedule{
		"a": {TaskID: "a", DelayDays: 2, Importance: 1},
		"b": {TaskID: "b", DelayDays: 5, Importance: 3},
		"c": {TaskID: "c", DelayDays: 0, Importance: 4},
		"d": {TaskID: "d", DelayDays: 5, Importance: 2},
	}
	delayed, maxDelay, maxImportance := analyzeDelays(schedules)
	if maxDelay != 5 {
		t.Fatalf("expected max delay 5 got %d", maxDelay)
	}
	// b and d tie at 5; the greatest importance among them wins.
	if maxImportance != 3 {
		t.Fatalf("expected max importance 3 got %d", maxImportance)
	}
	if len(delayed) != 3 {
		t.Fatalf("expected 3 delayed tasks got %d", len(delayed))
	}
	if delayed[0].TaskID != "b" || delayed[1].TaskID != "d" || delayed[2].TaskID != "a" {
		t.Fatalf("unexpected order: %v", delayed)
	}
}

func TestAnalyzeDelaysNoDelays(t *testing.T) {
	schedules := map[string]model.TaskSchedule{
		"a": {TaskID: "a", DelayDays: 0, Importance: 4},
	}
	delayed, maxDelay, maxImportance := analyzeDelays(schedules)
	if len(delayed) != 0 || maxDelay != 0 || maxImportance != 0 {
		t.Fatalf("expected empty analysis got %v %d %d", delayed, maxDelay, maxImportance)
	}
}
