package model

import (
	"fmt"
	"time"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/calendar"
)

// Project defines the window a leveling run schedules into.
type Project struct {
	ID    string
	Name  string
	Start time.Time
	End   time.Time
}

// SchedulingParams are the knobs for one leveling run. They are immutable
// for the run's duration.
type SchedulingParams struct {
	WorkdayHours         float64 `json:"workday_hours" yaml:"workday_hours"`
	BufferDays           int     `json:"buffer_days" yaml:"buffer_days"`
	MaxScheduleDays      int     `json:"max_schedule_days" yaml:"max_schedule_days"`
	PreferSingleResource bool    `json:"prefer_single_resource" yaml:"prefer_single_resource"`
	AllowSplits          bool    `json:"allow_splits" yaml:"allow_splits"`
	WorkdaysOnly         bool    `json:"workdays_only" yaml:"workdays_only"`
}

// DefaultParams returns the parameter set used when no configuration is
// provided.
func DefaultParams() SchedulingParams {
	return SchedulingParams{
		WorkdayHours:    8,
		BufferDays:      10,
		MaxScheduleDays: 180,
		WorkdaysOnly:    true,
	}
}

// SetDefaults fills zero-valued numeric fields with the defaults.
func (p *SchedulingParams) SetDefaults() {
	def := DefaultParams()
	if p.WorkdayHours == 0 {
		p.WorkdayHours = def.WorkdayHours
	}
	if p.MaxScheduleDays == 0 {
		p.MaxScheduleDays = def.MaxScheduleDays
	}
}

// Validate checks the parameter ranges.
func (p SchedulingParams) Validate() error {
	if p.WorkdayHours < 4 || p.WorkdayHours > 12 {
		return fmt.Errorf("workday_hours %.1f outside [4,12]", p.WorkdayHours)
	}
	if p.BufferDays < 0 || p.BufferDays > 60 {
		return fmt.Errorf("buffer_days %d outside [0,60]", p.BufferDays)
	}
	if p.MaxScheduleDays < 30 || p.MaxScheduleDays > 365 {
		return fmt.Errorf("max_schedule_days %d outside [30,365]", p.MaxScheduleDays)
	}
	return nil
}

// WindowEnd returns the effective end of the scheduling window:
// min(project end + buffer days, project start + max schedule days - 1).
func (p SchedulingParams) WindowEnd(proj Project) time.Time {
	buffered := calendar.DayOf(proj.End).AddDate(0, 0, p.BufferDays)
	capped := calendar.DayOf(proj.Start).AddDate(0, 0, p.MaxScheduleDays-1)
	if capped.Before(buffered) {
		return capped
	}
	return buffered
}
