package leveling

import (
	"sort"
	"time"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/calendar"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/model"
)

// hourEpsilon absorbs floating-point drift from many small hour increments.
const hourEpsilon = 1e-9

// taskAssignment accumulates one task's contributions in a scratch ledger.
// Nothing is merged into the shared ledger until the task is known to fit:
// a failed task must leave no trace in the run state.
type taskAssignment struct {
	perResource map[string]map[time.Time]float64
	scratch     *UsageLedger
	total       float64
	first, last time.Time
	started     bool
}

func newTaskAssignment() *taskAssignment {
	return &taskAssignment{
		perResource: make(map[string]map[time.Time]float64),
		scratch:     NewUsageLedger(),
	}
}

func (a *taskAssignment) add(resourceID string, day time.Time, hours float64) {
	if hours <= 0 {
		return
	}
	m := a.perResource[resourceID]
	if m == nil {
		m = make(map[time.Time]float64)
		a.perResource[resourceID] = m
	}
	m[day] += hours
	a.scratch.Commit(resourceID, day, hours)
	a.total += hours
	if !a.started || day.Before(a.first) {
		a.first = day
	}
	if !a.started || day.After(a.last) {
		a.last = day
	}
	a.started = true
}

// resourceIDs returns the contributing resource IDs in sorted order.
func (a *taskAssignment) resourceIDs() []string {
	ids := make([]string, 0, len(a.perResource))
	for id := range a.perResource {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// contribution pairs a resource with the hours it could still supply on a
// given day for the task under assignment.
type contribution struct {
	resourceID string
	usable     float64
}

// scheduleTask walks the window day by day and greedily places the task's
// sizing hours. earliest must already account for predecessor finish dates.
func scheduleTask(t *model.Task, resources map[string]*model.Resource, ledger *UsageLedger,
	earliest, windowEnd time.Time, params model.SchedulingParams) (*taskAssignment, error) {

	if earliest.After(windowEnd) {
		return nil, ErrWindowExceeded
	}
	if t.TotalAllocation()+hourEpsilon < t.SizingHours {
		return nil, ErrTaskCapacity
	}

	asn := newTaskAssignment()
	if t.SizingHours <= hourEpsilon {
		// Zero-effort tasks occupy their earliest feasible day.
		asn.first, asn.last, asn.started = earliest, earliest, true
		return asn, nil
	}

	eligible := make([]string, 0, len(t.Resources))
	for rid := range t.Resources {
		if _, ok := resources[rid]; ok {
			eligible = append(eligible, rid)
		}
	}
	sort.Strings(eligible)

	primary := ""
	for day := earliest; !day.After(windowEnd); day = day.AddDate(0, 0, 1) {
		need := t.SizingHours - asn.total
		if need <= hourEpsilon {
			break
		}
		cands := dayContributions(t, resources, ledger, asn.scratch, eligible, day)
		if len(cands) == 0 {
			continue
		}
		if params.PreferSingleResource {
			if primary == "" {
				primary = cands[0].resourceID
			}
			need = consumePrimary(asn, cands, primary, day, need)
			if need > hourEpsilon && params.AllowSplits {
				for _, c := range cands {
					if c.resourceID == primary {
						continue
					}
					take := minFloat(c.usable, need)
					asn.add(c.resourceID, day, take)
					need -= take
					if need <= hourEpsilon {
						break
					}
				}
			}
			continue
		}
		for _, c := range cands {
			take := minFloat(c.usable, need)
			asn.add(c.resourceID, day, take)
			need -= take
			if need <= hourEpsilon {
				break
			}
		}
	}

	if asn.total+hourEpsilon < t.SizingHours {
		return nil, ErrAvailability
	}
	return asn, nil
}

// dayContributions computes the usable hours per eligible resource for one
// day, sorted by descending usable hours with resource ID as tie-break.
// usable is capped by the task's remaining allocation from that resource,
// which shrinks as earlier days consume it. Non-positive amounts are
// dropped.
func dayContributions(t *model.Task, resources map[string]*model.Resource, ledger, scratch *UsageLedger,
	eligible []string, day time.Time) []contribution {
	var cands []contribution
	for _, rid := range eligible {
		avail := resources[rid].AvailabilityOn(day)
		usable := avail - ledger.Used(rid, day) - scratch.Used(rid, day)
		if remaining := t.Resources[rid] - scratch.AssignedTo(rid); remaining < usable {
			usable = remaining
		}
		if usable <= hourEpsilon {
			continue
		}
		cands = append(cands, contribution{resourceID: rid, usable: usable})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].usable != cands[j].usable {
			return cands[i].usable > cands[j].usable
		}
		return cands[i].resourceID < cands[j].resourceID
	})
	return cands
}

// consumePrimary draws from the primary resource if it can contribute today
// and returns the remaining need.
func consumePrimary(asn *taskAssignment, cands []contribution, primary string, day time.Time, need float64) float64 {
	for _, c := range cands {
		if c.resourceID != primary {
			continue
		}
		take := minFloat(c.usable, need)
		asn.add(primary, day, take)
		return need - take
	}
	return need
}

// earliestStart returns the first day the task may begin: the project start,
// or the day after the latest finish among successfully scheduled
// predecessors. Failed or missing predecessors are ignored here.
func earliestStart(t *model.Task, schedules map[string]model.TaskSchedule, projectStart time.Time) time.Time {
	start := calendar.DayOf(projectStart)
	for _, pid := range t.PredecessorIDs {
		s, ok := schedules[pid]
		if !ok {
			continue
		}
		next := calendar.DayOf(s.End).AddDate(0, 0, 1)
		if next.After(start) {
			start = next
		}
	}
	return start
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
