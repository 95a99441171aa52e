package leveling

import (
	"time"

	"github.com/google/uuid"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/calendar"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/events"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/logger"
	coremetrics "github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/metrics"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/model"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/internal/eventbus"
)

// LevelingInputs are the fully materialized, normalized inputs for one run.
// The derivation step (core/inputs) owns real-world normalization; the
// engine assumes its invariants and degrades via warnings when violated.
type LevelingInputs struct {
	Tasks     []*model.Task
	Resources []*model.Resource
	Project   model.Project
	Warnings  []string
}

// Engine runs the leveling pipeline. The zero dependencies are optional:
// logging, metrics and events never influence the computed schedule.
type Engine struct {
	log  logger.Logger
	sink coremetrics.MetricsSink
	bus  eventbus.EventBus
}

// NewEngine creates an engine. Nil arguments are replaced with no-op
// implementations.
func NewEngine(log logger.Logger, sink coremetrics.MetricsSink, bus eventbus.EventBus) *Engine {
	if log == nil {
		log = nopLogger{}
	}
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	return &Engine{log: log, sink: sink, bus: bus}
}

// RunResourceLeveling is the package-level convenience entry point, running
// a silent engine over the given inputs. warnings collected upstream pass
// through to the result untouched.
func RunResourceLeveling(tasks []*model.Task, resources []*model.Resource, project model.Project,
	params model.SchedulingParams, warnings []string) model.LevelingResult {
	eng := NewEngine(nil, nil, nil)
	return eng.Run(LevelingInputs{Tasks: tasks, Resources: resources, Project: project, Warnings: warnings}, params)
}

// Run executes one leveling pass. Each invocation owns a fresh usage
// ledger; concurrent runs never share state. The result is deterministic
// for identical inputs.
func (e *Engine) Run(inputs LevelingInputs, params model.SchedulingParams) model.LevelingResult {
	start := time.Now()
	runID := uuid.NewString()

	res := model.LevelingResult{
		Assignments: make(map[string]map[string]map[time.Time]float64),
		Schedules:   make(map[string]model.TaskSchedule),
		Utilization: make(map[string]model.ResourceUtilization),
		WindowStart: calendar.DayOf(inputs.Project.Start),
		WindowEnd:   params.WindowEnd(inputs.Project),
	}
	res.Warnings = append(res.Warnings, inputs.Warnings...)

	if len(inputs.Tasks) == 0 {
		e.log.Infof("leveling run %s: no tasks, returning empty result", runID)
		return res
	}

	e.publish(events.RunEvent{RunID: runID, ProjectID: inputs.Project.ID, Phase: events.RunStarted, Tasks: len(inputs.Tasks)})
	e.log.Infof("leveling %d tasks against %d resources for project %s",
		len(inputs.Tasks), len(inputs.Resources), inputs.Project.ID)

	tasks := make(map[string]*model.Task, len(inputs.Tasks))
	for _, t := range inputs.Tasks {
		tasks[t.ID] = t
	}
	resources := make(map[string]*model.Resource, len(inputs.Resources))
	for _, r := range inputs.Resources {
		resources[r.ID] = r
	}

	importance, impWarnings := computeImportance(tasks)
	res.Warnings = append(res.Warnings, impWarnings...)
	order, orderWarnings := processingOrder(tasks, importance)
	res.Warnings = append(res.Warnings, orderWarnings...)
	for _, w := range impWarnings {
		e.publish(events.WarningEvent{RunID: runID, Message: w})
	}

	ledger := NewUsageLedger()
	var records []coremetrics.TaskScheduleRecord
	var totalHours float64

	for _, id := range order {
		t := tasks[id]
		totalHours += t.SizingHours
		est := earliestStart(t, res.Schedules, res.WindowStart)
		asn, err := scheduleTask(t, resources, ledger, est, res.WindowEnd, params)
		if err != nil {
			res.Errors = append(res.Errors, model.TaskError{TaskID: t.ID, TaskName: t.Name, Message: err.Error()})
			tasksProcessed.WithLabelValues("failed").Inc()
			e.publish(events.TaskEvent{RunID: runID, TaskID: t.ID, TaskName: t.Name, Err: err})
			e.log.Warnf("task %s not schedulable: %v", t.ID, err)
			records = append(records, coremetrics.TaskScheduleRecord{
				RunID: runID, ProjectID: inputs.Project.ID,
				TaskID: t.ID, TaskName: t.Name, Error: err.Error(), Time: start,
			})
			continue
		}
		ledger.Merge(asn.scratch)
		sched := model.TaskSchedule{
			TaskID:        t.ID,
			TaskName:      t.Name,
			Start:         asn.first,
			End:           asn.last,
			AssignedHours: asn.total,
			ResourcesUsed: asn.resourceIDs(),
			DelayDays:     calendar.DaysBetween(est, asn.first),
			Importance:    importance[t.ID],
		}
		res.Schedules[t.ID] = sched
		res.Assignments[t.ID] = asn.perResource
		tasksProcessed.WithLabelValues("scheduled").Inc()
		e.publish(events.TaskEvent{RunID: runID, TaskID: t.ID, TaskName: t.Name, Scheduled: true, DelayDays: sched.DelayDays})
		records = append(records, coremetrics.TaskRecord(runID, inputs.Project.ID, sched, start))
	}

	util, avg, peak := computeUtilization(resources, ledger, res.WindowStart, res.WindowEnd)
	res.Utilization = util

	delayed, maxDelay, maxImportance := analyzeDelays(res.Schedules)
	res.DelayedTasks = delayed

	res.Summary = model.Summary{
		TotalTasks:         len(inputs.Tasks),
		ScheduledTasks:     len(res.Schedules),
		TotalHours:         totalHours,
		AverageUtilization: avg,
		PeakUtilization:    peak,
		MaxDelayDays:       maxDelay,
		MaxDelayImportance: maxImportance,
	}

	elapsed := time.Since(start)
	runsTotal.Inc()
	runDuration.Observe(elapsed.Seconds())
	delayGauge.Set(float64(maxDelay))

	if err := e.sink.RecordTaskSchedules(records); err != nil {
		e.log.Errorf("metrics error: %v", err)
	}
	if rr, ok := e.sink.(coremetrics.RunRecorder); ok {
		rec := coremetrics.RunRecord{
			RunID:              runID,
			ProjectID:          inputs.Project.ID,
			TotalTasks:         res.Summary.TotalTasks,
			ScheduledTasks:     res.Summary.ScheduledTasks,
			TotalHours:         res.Summary.TotalHours,
			AverageUtilization: res.Summary.AverageUtilization,
			PeakUtilization:    res.Summary.PeakUtilization,
			MaxDelayDays:       res.Summary.MaxDelayDays,
			Duration:           elapsed,
			Time:               start,
		}
		if err := rr.RecordRun(rec); err != nil {
			e.log.Errorf("run metrics error: %v", err)
		}
	}
	if ur, ok := e.sink.(coremetrics.UtilizationRecorder); ok {
		var urecs []coremetrics.UtilizationRecord
		for _, u := range util {
			urecs = append(urecs, coremetrics.UtilizationRecord{
				RunID: runID, ProjectID: inputs.Project.ID,
				ResourceID: u.ResourceID, Available: u.AvailableHours,
				Assigned: u.AssignedHours, Percent: u.Percent, Time: start,
			})
		}
		if err := ur.RecordUtilization(urecs); err != nil {
			e.log.Errorf("utilization metrics error: %v", err)
		}
	}

	e.publish(events.RunEvent{RunID: runID, ProjectID: inputs.Project.ID, Phase: events.RunCompleted,
		Tasks: len(inputs.Tasks), Duration: elapsed})
	e.log.Infof("leveling run done: %d/%d tasks scheduled, max delay %d days",
		res.Summary.ScheduledTasks, res.Summary.TotalTasks, maxDelay)
	return res
}

func (e *Engine) publish(ev eventbus.Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}

// nopLogger keeps the engine silent when no logger is supplied.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
