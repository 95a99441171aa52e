package leveling

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/calendar"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/model"
)

// computeUtilization aggregates committed versus available hours from the
// final ledger over [windowStart, windowEnd]. Daily utilization is only
// defined for days with positive availability so zero-capacity weekends do
// not distort the average. Resources are always summed in sorted-ID order:
// float addition is order-sensitive, and summing in map order would break
// byte-identical output across identical runs.
func computeUtilization(resources map[string]*model.Resource, ledger *UsageLedger,
	windowStart, windowEnd time.Time) (map[string]model.ResourceUtilization, float64, float64) {

	util := make(map[string]model.ResourceUtilization, len(resources))
	var daily []float64
	peak := 0.0

	ids := make([]string, 0, len(resources))
	for rid := range resources {
		ids = append(ids, rid)
	}
	sort.Strings(ids)

	days := calendar.Days(windowStart, windowEnd)
	for _, day := range days {
		var avail, assigned float64
		for _, rid := range ids {
			avail += resources[rid].AvailabilityOn(day)
			assigned += ledger.Used(rid, day)
		}
		if avail <= 0 {
			continue
		}
		pct := assigned / avail * 100
		daily = append(daily, pct)
		if pct > peak {
			peak = pct
		}
	}

	for _, rid := range ids {
		r := resources[rid]
		total := r.TotalAvailability(windowStart, windowEnd)
		assigned := ledger.AssignedTo(rid)
		pct := 0.0
		if total > 0 {
			pct = assigned / total * 100
		}
		util[rid] = model.ResourceUtilization{
			ResourceID:     rid,
			ResourceName:   r.Name,
			AvailableHours: total,
			AssignedHours:  assigned,
			Percent:        pct,
		}
	}

	avg := 0.0
	if len(daily) > 0 {
		avg = stat.Mean(daily, nil)
	}
	return util, avg, peak
}
