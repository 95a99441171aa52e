package events

import "time"

// RunPhase marks the lifecycle stage a RunEvent refers to.
type RunPhase string

const (
	RunStarted   RunPhase = "started"
	RunCompleted RunPhase = "completed"
)

// RunEvent is published when a leveling run starts and when it completes.
type RunEvent struct {
	RunID     string
	ProjectID string
	Phase     RunPhase
	Tasks     int
	Duration  time.Duration // zero for RunStarted
}

// TaskEvent is published for each task once its fate is known.
type TaskEvent struct {
	RunID     string
	TaskID    string
	TaskName  string
	Scheduled bool
	DelayDays int
	Err       error
}

// WarningEvent carries a structural warning raised while deriving inputs or
// traversing the task graph.
type WarningEvent struct {
	RunID   string
	Message string
}
