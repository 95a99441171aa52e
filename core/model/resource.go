package model

import (
	"time"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/calendar"
)

// Resource represents a person or machine with finite daily capacity.
type Resource struct {
	ID   string
	Name string
	// Availability maps a date (midnight UTC) to the hours available that
	// day. Values are clamped to [0, max daily capacity] at derivation.
	Availability map[time.Time]float64
}

// AvailabilityOn returns the hours available on the given date. Unknown
// dates have zero capacity.
func (r Resource) AvailabilityOn(t time.Time) float64 {
	return r.Availability[calendar.DayOf(t)]
}

// TotalAvailability sums the available hours over [first, last] inclusive.
func (r Resource) TotalAvailability(first, last time.Time) float64 {
	var sum float64
	for _, d := range calendar.Days(first, last) {
		sum += r.Availability[d]
	}
	return sum
}
