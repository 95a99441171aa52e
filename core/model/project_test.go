package model

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParamsValidate(t *testing.T) {
	p := DefaultParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	cases := []SchedulingParams{
		{WorkdayHours: 3, MaxScheduleDays: 100},
		{WorkdayHours: 13, MaxScheduleDays: 100},
		{WorkdayHours: 8, BufferDays: 61, MaxScheduleDays: 100},
		{WorkdayHours: 8, MaxScheduleDays: 29},
		{WorkdayHours: 8, MaxScheduleDays: 366},
	}
	for i, c := range cases {
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d: expected error for %+v", i, c)
		}
	}
}

func TestWindowEnd(t *testing.T) {
	proj := Project{Start: date(2025, 1, 1), End: date(2025, 3, 1)}

	p := SchedulingParams{WorkdayHours: 8, BufferDays: 10, MaxScheduleDays: 365}
	if got, want := p.WindowEnd(proj), date(2025, 3, 11); !got.Equal(want) {
		t.Fatalf("buffer bound: expected %v got %v", want, got)
	}

	p = SchedulingParams{WorkdayHours: 8, BufferDays: 60, MaxScheduleDays: 30}
	if got, want := p.WindowEnd(proj), date(2025, 1, 30); !got.Equal(want) {
		t.Fatalf("max days bound: expected %v got %v", want, got)
	}
}

func TestTaskValidate(t *testing.T) {
	ok := Task{ID: "t1", Priority: 2, SizingHours: 8}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := []Task{
		{Priority: 2},
		{ID: "t1", Priority: 0},
		{ID: "t1", Priority: 5},
		{ID: "t1", Priority: 2, SizingHours: -1},
	}
	for i, b := range bad {
		if err := b.Validate(); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestTotalAllocation(t *testing.T) {
	task := Task{ID: "t1", Priority: 1, Resources: map[string]float64{"r1": 4, "r2": 6}}
	if c := task.TotalAllocation(); c != 10 {
		t.Fatalf("expected 10 got %v", c)
	}
}
