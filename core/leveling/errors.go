package leveling

import "errors"

// Per-task scheduling failures. They are local and recoverable: a failed
// task is recorded and the run continues.
var (
	// ErrWindowExceeded means the task's earliest feasible start falls
	// after the scheduling window.
	ErrWindowExceeded = errors.New("earliest start exceeds scheduling window")
	// ErrTaskCapacity means the task's own per-day resource allocations
	// cannot cover its sizing hours regardless of availability.
	ErrTaskCapacity = errors.New("not enough task-specific resource capacity")
	// ErrAvailability means the window was exhausted before the task's
	// sizing hours could be placed.
	ErrAvailability = errors.New("insufficient resource availability in scheduling window")
)
