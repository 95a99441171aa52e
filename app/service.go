package app

import (
	"context"
	"fmt"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/config"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/inputs"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/leveling"
	coremetrics "github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/metrics"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/model"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/infra/logger"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/infra/metrics"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/internal/eventbus"
)

// Service wires the leveling engine with its logger, metrics sinks and
// event bus from configuration.
type Service struct {
	Engine      *leveling.Engine
	Params      model.SchedulingParams
	bus         eventbus.EventBus
	log         logger.Logger
	influx      *metrics.InfluxSink
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.NewWithConfig("leveler", cfg.Logging.Level, cfg.Logging.Format)

	var sinks []coremetrics.MetricsSink
	var influx *metrics.InfluxSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(cfg.Metrics)
		if is, ok := sink.(*metrics.InfluxSink); ok {
			influx = is
		}
		sinks = append(sinks, sink)
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	bus := eventbus.New()
	return &Service{
		Engine:      leveling.NewEngine(logg, sink, bus),
		Params:      cfg.Leveling,
		bus:         bus,
		log:         logg,
		influx:      influx,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Level loads a scenario file, derives normalized inputs and runs the
// engine once.
func (s *Service) Level(scenarioPath string) (model.LevelingResult, error) {
	scenario, err := inputs.LoadScenario(scenarioPath)
	if err != nil {
		return model.LevelingResult{}, fmt.Errorf("load scenario: %w", err)
	}
	in := inputs.Derive(scenario.Tasks, scenario.Employees, scenario.ProjectModel(), s.Params)
	return s.Engine.Run(in, s.Params), nil
}

// ServeMetrics exposes the Prometheus endpoint until ctx is canceled. It is
// a no-op when Prometheus is disabled.
func (s *Service) ServeMetrics(ctx context.Context) error {
	if !s.promEnabled {
		return nil
	}
	return metrics.StartPromServer(ctx, ":"+s.promPort)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.bus != nil {
		s.bus.Close()
	}
	if s.influx != nil {
		s.influx.Close()
	}
	return nil
}
