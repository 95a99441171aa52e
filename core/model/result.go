package model

import "time"

// TaskSchedule describes where one task landed after leveling.
type TaskSchedule struct {
	TaskID        string
	TaskName      string
	Start         time.Time
	End           time.Time
	AssignedHours float64
	ResourcesUsed []string // sorted resource IDs that contributed hours
	DelayDays     int      // calendar days between earliest possible and actual start
	Importance    int
}

// ResourceUtilization aggregates one resource's load over the window.
type ResourceUtilization struct {
	ResourceID     string
	ResourceName   string
	AvailableHours float64
	AssignedHours  float64
	Percent        float64
}

// TaskError records a per-task scheduling failure. Failures are local: they
// never abort the run.
type TaskError struct {
	TaskID   string
	TaskName string
	Message  string
}

// Summary condenses a leveling run for dashboards.
type Summary struct {
	TotalTasks         int
	ScheduledTasks     int
	TotalHours         float64 // declared sizing hours, not hours actually placed
	AverageUtilization float64
	PeakUtilization    float64
	MaxDelayDays       int
	MaxDelayImportance int
}

// LevelingResult is the complete output of one leveling run. For identical
// inputs the result is byte-identical across runs.
type LevelingResult struct {
	// Assignments maps task ID -> resource ID -> date -> hours.
	Assignments map[string]map[string]map[time.Time]float64
	Schedules   map[string]TaskSchedule
	Utilization map[string]ResourceUtilization
	// DelayedTasks holds every schedule with DelayDays > 0, sorted by
	// descending delay.
	DelayedTasks []TaskSchedule
	Errors       []TaskError
	Warnings     []string
	Summary      Summary
	WindowStart  time.Time
	WindowEnd    time.Time
}
