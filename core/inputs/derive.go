package inputs

import (
	"fmt"
	"sort"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/calendar"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/leveling"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/model"
)

// PlaceholderResourceID is assigned to tasks when no employees exist so
// leveling can still run against a single synthetic resource.
const PlaceholderResourceID = "unassigned"

// RawTask is a task record as produced by upstream ingestion (CSV, Workday,
// MPP parsing). Field normalization happens here, not in the engine.
type RawTask struct {
	ID           string             `json:"id" yaml:"id"`
	Name         string             `json:"name" yaml:"name"`
	Priority     int                `json:"priority" yaml:"priority"`
	SizingHours  float64            `json:"sizing_hours" yaml:"sizing_hours"`
	Resources    map[string]float64 `json:"resources" yaml:"resources"`
	Predecessors []string           `json:"predecessors" yaml:"predecessors"`
}

// RawEmployee is an employee record from the upstream roster.
type RawEmployee struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Derive builds normalized LevelingInputs from raw records: priorities are
// clamped into range, reciprocal successor links are rebuilt from
// predecessor lists, dangling references become warnings, and resources are
// expanded from the employee roster with a per-date availability calendar.
func Derive(rawTasks []RawTask, employees []RawEmployee, project model.Project,
	params model.SchedulingParams) leveling.LevelingInputs {

	var warnings []string

	resources := deriveResources(employees, project, params, &warnings)
	known := make(map[string]bool, len(resources))
	for _, r := range resources {
		known[r.ID] = true
	}

	tasks := make([]*model.Task, 0, len(rawTasks))
	byID := make(map[string]*model.Task, len(rawTasks))
	for _, rt := range rawTasks {
		t := &model.Task{
			ID:          rt.ID,
			Name:        rt.Name,
			Priority:    rt.Priority,
			SizingHours: rt.SizingHours,
			Resources:   make(map[string]float64, len(rt.Resources)),
		}
		if t.Name == "" {
			t.Name = t.ID
		}
		if t.Priority < model.MinPriority {
			if rt.Priority != 0 {
				warnings = append(warnings, fmt.Sprintf("task %s: priority %d below minimum, using %d", t.ID, rt.Priority, model.MinPriority))
			}
			t.Priority = model.MinPriority
		} else if t.Priority > model.MaxPriority {
			warnings = append(warnings, fmt.Sprintf("task %s: priority %d above maximum, using %d", t.ID, rt.Priority, model.MaxPriority))
			t.Priority = model.MaxPriority
		}
		rids := make([]string, 0, len(rt.Resources))
		for rid := range rt.Resources {
			rids = append(rids, rid)
		}
		sort.Strings(rids)
		for _, rid := range rids {
			h := rt.Resources[rid]
			if h <= 0 {
				continue
			}
			if !known[rid] {
				warnings = append(warnings, fmt.Sprintf("task %s references unknown resource %s", t.ID, rid))
			}
			t.Resources[rid] = h
		}
		t.PredecessorIDs = append(t.PredecessorIDs, rt.Predecessors...)
		tasks = append(tasks, t)
		byID[t.ID] = t
	}

	// Successor links are reciprocal to predecessor links across the set.
	// A predecessor absent from the set is kept but warned about; the
	// engine treats it as zero in-degree.
	for _, t := range tasks {
		for _, pid := range t.PredecessorIDs {
			pred, ok := byID[pid]
			if !ok {
				warnings = append(warnings, fmt.Sprintf("task %s references missing predecessor %s", t.ID, pid))
				continue
			}
			pred.SuccessorIDs = append(pred.SuccessorIDs, t.ID)
		}
	}
	for _, t := range tasks {
		sort.Strings(t.SuccessorIDs)
	}

	if len(employees) == 0 {
		for _, t := range tasks {
			if len(t.Resources) == 0 {
				// The allocation must cover the full sizing or the task can
				// never pass the static feasibility check.
				alloc := t.SizingHours
				if alloc <= 0 {
					alloc = params.WorkdayHours
				}
				t.Resources[PlaceholderResourceID] = alloc
			}
		}
	}

	return leveling.LevelingInputs{Tasks: tasks, Resources: resources, Project: project, Warnings: warnings}
}

// deriveResources expands one resource per employee over the scheduling
// window. With an empty roster a single placeholder resource is created so
// runs still produce a schedule.
func deriveResources(employees []RawEmployee, project model.Project,
	params model.SchedulingParams, warnings *[]string) []*model.Resource {

	cal := calendar.Calendar{
		Start:        calendar.DayOf(project.Start),
		End:          params.WindowEnd(project),
		DailyHours:   params.WorkdayHours,
		WorkdaysOnly: params.WorkdaysOnly,
	}

	if len(employees) == 0 {
		*warnings = append(*warnings, "no employees available; using placeholder resource")
		return []*model.Resource{{
			ID:           PlaceholderResourceID,
			Name:         "Unassigned",
			Availability: cal.Expand(),
		}}
	}

	out := make([]*model.Resource, 0, len(employees))
	seen := make(map[string]bool, len(employees))
	for _, emp := range employees {
		if emp.ID == "" || seen[emp.ID] {
			*warnings = append(*warnings, fmt.Sprintf("skipping employee record with empty or duplicate ID %q", emp.ID))
			continue
		}
		seen[emp.ID] = true
		name := emp.Name
		if name == "" {
			name = emp.ID
		}
		out = append(out, &model.Resource{ID: emp.ID, Name: name, Availability: cal.Expand()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
