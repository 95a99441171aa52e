package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/metrics"
)

func TestInfluxSink_RecordTaskSchedules(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(coremetrics.Config{
		InfluxURL:    srv.URL,
		InfluxToken:  "token",
		InfluxOrg:    "org",
		InfluxBucket: "bucket",
	})
	now := time.Now()
	rec := coremetrics.TaskScheduleRecord{
		RunID:      "run1",
		ProjectID:  "proj1",
		TaskID:     "task1",
		Hours:      11.5,
		DelayDays:  2,
		Importance: 4,
		Scheduled:  true,
		Time:       now,
	}

	if err := sink.RecordTaskSchedules([]coremetrics.TaskScheduleRecord{rec}); err != nil {
		t.Fatalf("record error: %v", err)
	}
	p := write.NewPointWithMeasurement("leveling_task").
		AddTag("run_id", "run1").
		AddTag("project_id", "proj1").
		AddTag("task_id", "task1").
		AddTag("scheduled", "true").
		AddField("hours", 11.5).
		AddField("delay_days", 2).
		AddField("importance", 4).
		SetTime(now)
	expected := strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond))
	if strings.TrimSpace(body) != expected {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			called = true
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}))
	defer srv.Close()

	cfg := coremetrics.Config{
		InfluxURL:    srv.URL,
		InfluxToken:  "tok",
		InfluxOrg:    "org",
		InfluxBucket: "bucket",
	}
	sink := NewInfluxSinkWithFallback(cfg)
	if _, ok := sink.(*InfluxSink); ok {
		t.Fatalf("expected NopSink on failing health check")
	}
	if !called {
		t.Fatalf("health endpoint not called")
	}
}
