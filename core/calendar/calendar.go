package calendar

import "time"

// DayOf normalizes t to midnight UTC so dates can be used as map keys and
// compared without time-of-day noise.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend reports whether the given date falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Days returns every date from first to last inclusive, normalized to
// midnight UTC. An inverted range yields nil.
func Days(first, last time.Time) []time.Time {
	first, last = DayOf(first), DayOf(last)
	if first.After(last) {
		return nil
	}
	var out []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// DaysBetween returns the number of calendar days from a to b. It is zero
// when both fall on the same date and negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(DayOf(b).Sub(DayOf(a)).Hours() / 24)
}

// Calendar describes a resource's working pattern over a date range as a
// daily capacity plus per-date exceptions. It is the sparse equivalent of a
// fully expanded date->hours map and must produce identical values.
type Calendar struct {
	Start        time.Time
	End          time.Time
	DailyHours   float64
	WorkdaysOnly bool
	// Exceptions overrides the computed capacity for specific dates
	// (holidays, part-time days). Keys must be midnight UTC.
	Exceptions map[time.Time]float64
}

// HoursOn returns the capacity for the given date. Dates outside the
// calendar range have zero capacity.
func (c Calendar) HoursOn(t time.Time) float64 {
	d := DayOf(t)
	if d.Before(DayOf(c.Start)) || d.After(DayOf(c.End)) {
		return 0
	}
	if h, ok := c.Exceptions[d]; ok {
		if h < 0 {
			return 0
		}
		if h > c.DailyHours {
			return c.DailyHours
		}
		return h
	}
	if c.WorkdaysOnly && IsWeekend(d) {
		return 0
	}
	return c.DailyHours
}

// Expand materializes the calendar into a per-date availability map, the
// representation consumed by the leveling engine.
func (c Calendar) Expand() map[time.Time]float64 {
	out := make(map[time.Time]float64)
	for _, d := range Days(c.Start, c.End) {
		out[d] = c.HoursOn(d)
	}
	return out
}
