package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/model"
)

const dateFormat = "2006-01-02"

// WriteJSON writes the full leveling result to w in JSON format. Map keys
// are emitted sorted, so identical results serialize identically.
func WriteJSON(w io.Writer, res model.LevelingResult) error {
	enc := json.NewEncoder(w)
	return enc.Encode(res)
}

// WriteCSV writes the task schedules to w in CSV format, one row per task
// sorted by task ID.
func WriteCSV(w io.Writer, res model.LevelingResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"task_id", "task_name", "start", "end", "hours", "delay_days", "importance", "resources"}); err != nil {
		return err
	}
	ids := make([]string, 0, len(res.Schedules))
	for id := range res.Schedules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		s := res.Schedules[id]
		rec := []string{
			s.TaskID,
			s.TaskName,
			s.Start.Format(dateFormat),
			s.End.Format(dateFormat),
			strconv.FormatFloat(s.AssignedHours, 'f', -1, 64),
			strconv.Itoa(s.DelayDays),
			strconv.Itoa(s.Importance),
			strings.Join(s.ResourcesUsed, ";"),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteUtilizationCSV writes per-resource utilization rows sorted by
// resource ID.
func WriteUtilizationCSV(w io.Writer, res model.LevelingResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"resource_id", "resource_name", "available_hours", "assigned_hours", "percent"}); err != nil {
		return err
	}
	ids := make([]string, 0, len(res.Utilization))
	for id := range res.Utilization {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		u := res.Utilization[id]
		rec := []string{
			u.ResourceID,
			u.ResourceName,
			strconv.FormatFloat(u.AvailableHours, 'f', -1, 64),
			strconv.FormatFloat(u.AssignedHours, 'f', -1, 64),
			strconv.FormatFloat(u.Percent, 'f', 2, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatDay renders a date the way exports expect it.
func FormatDay(t time.Time) string { return t.Format(dateFormat) }
