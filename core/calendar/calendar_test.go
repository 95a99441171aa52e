package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandMatchesNaive(t *testing.T) {
	cal := Calendar{
		Start:        date(2025, 3, 1), // Saturday
		End:          date(2025, 3, 31),
		DailyHours:   8,
		WorkdaysOnly: true,
		Exceptions:   map[time.Time]float64{date(2025, 3, 17): 4},
	}
	expanded := cal.Expand()
	if len(expanded) != 31 {
		t.Fatalf("expected 31 days got %d", len(expanded))
	}
	// Naive expansion: walk every date and apply the rules by hand.
	for d := cal.Start; !d.After(cal.End); d = d.AddDate(0, 0, 1) {
		want := 8.0
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			want = 0
		}
		if d.Equal(date(2025, 3, 17)) {
			want = 4
		}
		if got := expanded[d]; got != want {
			t.Fatalf("%s: expected %.1f got %.1f", d.Format("2006-01-02"), want, got)
		}
		if got := cal.HoursOn(d); got != want {
			t.Fatalf("HoursOn(%s): expected %.1f got %.1f", d.Format("2006-01-02"), want, got)
		}
	}
}

func TestHoursOnOutsideRange(t *testing.T) {
	cal := Calendar{Start: date(2025, 1, 6), End: date(2025, 1, 10), DailyHours: 8}
	if h := cal.HoursOn(date(2025, 1, 5)); h != 0 {
		t.Fatalf("expected 0 before range got %v", h)
	}
	if h := cal.HoursOn(date(2025, 1, 11)); h != 0 {
		t.Fatalf("expected 0 after range got %v", h)
	}
}

func TestExceptionClamped(t *testing.T) {
	cal := Calendar{
		Start:      date(2025, 1, 6),
		End:        date(2025, 1, 10),
		DailyHours: 8,
		Exceptions: map[time.Time]float64{
			date(2025, 1, 7): 12, // above capacity
			date(2025, 1, 8): -1, // below zero
		},
	}
	if h := cal.HoursOn(date(2025, 1, 7)); h != 8 {
		t.Fatalf("expected clamp to 8 got %v", h)
	}
	if h := cal.HoursOn(date(2025, 1, 8)); h != 0 {
		t.Fatalf("expected clamp to 0 got %v", h)
	}
}

func TestDaysBetween(t *testing.T) {
	a := date(2025, 1, 6)
	if d := DaysBetween(a, a); d != 0 {
		t.Fatalf("same day: expected 0 got %d", d)
	}
	if d := DaysBetween(a, a.AddDate(0, 0, 3)); d != 3 {
		t.Fatalf("expected 3 got %d", d)
	}
	if d := DaysBetween(a.AddDate(0, 0, 2), a); d != -2 {
		t.Fatalf("expected -2 got %d", d)
	}
}

func TestDaysInvertedRange(t *testing.T) {
	if days := Days(date(2025, 1, 10), date(2025, 1, 6)); days != nil {
		t.Fatalf("expected nil for inverted range got %d days", len(days))
	}
}
