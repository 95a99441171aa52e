package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/metrics"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/infra/logger"
)

// InfluxSink writes leveling events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	client := influxdb2.NewClientWithOptions(cfg.InfluxURL, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns
// a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.MetricsSink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordTaskSchedules writes per-task leveling outcomes as line protocol
// events.
func (s *InfluxSink) RecordTaskSchedules(recs []coremetrics.TaskScheduleRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, r := range recs {
		p := write.NewPointWithMeasurement("leveling_task").
			AddTag("run_id", r.RunID).
			AddTag("project_id", r.ProjectID).
			AddTag("task_id", r.TaskID).
			AddTag("scheduled", strconv.FormatBool(r.Scheduled)).
			AddField("hours", round3(r.Hours)).
			AddField("delay_days", r.DelayDays).
			AddField("importance", r.Importance).
			SetTime(r.Time)
		if r.Error != "" {
			p.AddField("error", r.Error)
		}
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun persists the run summary.
func (s *InfluxSink) RecordRun(rec coremetrics.RunRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("leveling_run").
		AddTag("run_id", rec.RunID).
		AddTag("project_id", rec.ProjectID).
		AddField("total_tasks", rec.TotalTasks).
		AddField("scheduled_tasks", rec.ScheduledTasks).
		AddField("total_hours", round3(rec.TotalHours)).
		AddField("avg_utilization", round3(rec.AverageUtilization)).
		AddField("peak_utilization", round3(rec.PeakUtilization)).
		AddField("max_delay_days", rec.MaxDelayDays).
		AddField("duration_ms", rec.Duration.Milliseconds()).
		SetTime(rec.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordUtilization persists per-resource utilization samples.
func (s *InfluxSink) RecordUtilization(recs []coremetrics.UtilizationRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, r := range recs {
		p := write.NewPointWithMeasurement("leveling_utilization").
			AddTag("run_id", r.RunID).
			AddTag("project_id", r.ProjectID).
			AddTag("resource_id", r.ResourceID).
			AddField("available", round3(r.Available)).
			AddField("assigned", round3(r.Assigned)).
			AddField("percent", round3(r.Percent)).
			SetTime(r.Time)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close shuts down the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
