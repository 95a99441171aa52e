package leveling

import (
	"sort"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/model"
)

// analyzeDelays surfaces the worst scheduling offenders. It returns every
// schedule with a positive delay sorted by descending delay, the maximum
// delay across all schedules, and the greatest importance among the tasks
// tied at that maximum.
func analyzeDelays(schedules map[string]model.TaskSchedule) ([]model.TaskSchedule, int, int) {
	maxDelay, maxImportance := 0, 0
	var delayed []model.TaskSchedule
	for _, s := range schedules {
		if s.DelayDays > maxDelay {
			maxDelay = s.DelayDays
			maxImportance = s.Importance
		} else if s.DelayDays == maxDelay && maxDelay > 0 && s.Importance > maxImportance {
			maxImportance = s.Importance
		}
		if s.DelayDays > 0 {
			delayed = append(delayed, s)
		}
	}
	sort.Slice(delayed, func(i, j int) bool {
		if delayed[i].DelayDays != delayed[j].DelayDays {
			return delayed[i].DelayDays > delayed[j].DelayDays
		}
		return delayed[i].TaskID < delayed[j].TaskID
	})
	return delayed, maxDelay, maxImportance
}
