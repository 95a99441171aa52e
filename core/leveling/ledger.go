package leveling

import (
	"sort"
	"time"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/calendar"
)

// UsageLedger tracks hours committed per resource per date during a single
// leveling run. It is strictly run-scoped: every invocation of the engine
// starts from an empty ledger and the ledger is never shared across runs.
type UsageLedger struct {
	used map[string]map[time.Time]float64
}

// NewUsageLedger returns an empty ledger.
func NewUsageLedger() *UsageLedger {
	return &UsageLedger{used: make(map[string]map[time.Time]float64)}
}

// Used returns the hours already committed for the resource on the date.
func (l *UsageLedger) Used(resourceID string, day time.Time) float64 {
	return l.used[resourceID][calendar.DayOf(day)]
}

// Commit adds hours for the resource on the date. Non-positive amounts are
// ignored.
func (l *UsageLedger) Commit(resourceID string, day time.Time, hours float64) {
	if hours <= 0 {
		return
	}
	d := calendar.DayOf(day)
	m := l.used[resourceID]
	if m == nil {
		m = make(map[time.Time]float64)
		l.used[resourceID] = m
	}
	m[d] += hours
}

// Merge folds another ledger into this one. It is used to promote a task's
// scratch commitments once the task is known to schedule successfully.
func (l *UsageLedger) Merge(other *UsageLedger) {
	for rid, days := range other.used {
		for d, h := range days {
			l.Commit(rid, d, h)
		}
	}
}

// AssignedTo returns the total hours committed to the resource over the
// whole ledger. Days are summed in chronological order: float addition is
// order-sensitive and map iteration order would make identical runs drift
// in the last ULP.
func (l *UsageLedger) AssignedTo(resourceID string) float64 {
	days := make([]time.Time, 0, len(l.used[resourceID]))
	for d := range l.used[resourceID] {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	var sum float64
	for _, d := range days {
		sum += l.used[resourceID][d]
	}
	return sum
}
