package model

import (
	"fmt"
	"sort"
)

// Priority bounds for tasks. Priorities are ordinal: 4 beats 1.
const (
	MinPriority = 1
	MaxPriority = 4
)

// Task represents a unit of project work to be leveled.
type Task struct {
	ID          string
	Name        string
	Priority    int     // ordinal priority between MinPriority and MaxPriority
	SizingHours float64 // total estimated effort, independent of duration
	// Resources maps a resource ID to the total hours this task may draw
	// from that resource over its whole duration.
	Resources      map[string]float64
	PredecessorIDs []string
	SuccessorIDs   []string
}

// Validate checks that the task definition is sound.
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task ID is required")
	}
	if t.SizingHours < 0 {
		return fmt.Errorf("sizing hours must not be negative")
	}
	if t.Priority < MinPriority || t.Priority > MaxPriority {
		return fmt.Errorf("priority %d outside [%d,%d]", t.Priority, MinPriority, MaxPriority)
	}
	return nil
}

// TotalAllocation returns the combined hours the task may draw across all
// of its eligible resources. A task whose allocations cannot cover its
// sizing hours can never schedule, regardless of availability. Summed in
// sorted-ID order so the result is stable across runs.
func (t Task) TotalAllocation() float64 {
	ids := make([]string, 0, len(t.Resources))
	for id := range t.Resources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var sum float64
	for _, id := range ids {
		sum += t.Resources[id]
	}
	return sum
}
