package period

import (
	"testing"
	"time"
)

// Monday 2026-01-26, 14:00 local time
var refNow = time.Date(2026, 1, 26, 14, 0, 0, 0, time.Local)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNew_StartsAtCurrentWeek(t *testing.T) {
	n := New("monday")
	if n.Mode() != ModeWeek {
		t.Errorf("expected week mode, got %s", n.Mode())
	}
	if n.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", n.Offset())
	}
}

func TestRange_Week(t *testing.T) {
	n := New("monday")
	r := n.Range(refNow)

	if !r.From.Equal(date(2026, time.January, 26)) {
		t.Errorf("From = %v, want Monday 2026-01-26", r.From)
	}
	if !r.To.Equal(date(2026, time.February, 2)) {
		t.Errorf("To = %v, want Monday 2026-02-02", r.To)
	}
	if r.Label != "26 Jan – 1 Feb 2026" {
		t.Errorf("Label = %q", r.Label)
	}
}

func TestRange_WeekHandlesSunday(t *testing.T) {
	// Sunday 2026-02-01 belongs to the week starting Monday 2026-01-26.
	sunday := time.Date(2026, 2, 1, 9, 0, 0, 0, time.Local)
	r := New("monday").Range(sunday)
	if !r.From.Equal(date(2026, time.January, 26)) {
		t.Errorf("From = %v, want Monday 2026-01-26", r.From)
	}
}

func TestRange_WeekSundayStart(t *testing.T) {
	r := New("sunday").Range(refNow)
	if !r.From.Equal(date(2026, time.January, 25)) {
		t.Errorf("From = %v, want Sunday 2026-01-25", r.From)
	}
	if !r.To.Equal(date(2026, time.February, 1)) {
		t.Errorf("To = %v, want Sunday 2026-02-01", r.To)
	}
}

func TestRange_WeekOffsets(t *testing.T) {
	n := New("monday")

	n.Previous()
	r := n.Range(refNow)
	if !r.From.Equal(date(2026, time.January, 19)) {
		t.Errorf("previous week From = %v, want 2026-01-19", r.From)
	}

	n.Next()
	n.Next()
	r = n.Range(refNow)
	if !r.From.Equal(date(2026, time.February, 2)) {
		t.Errorf("next week From = %v, want 2026-02-02", r.From)
	}

	n.Reset()
	r = n.Range(refNow)
	if !r.From.Equal(date(2026, time.January, 26)) {
		t.Errorf("reset From = %v, want 2026-01-26", r.From)
	}
}

func TestRange_WeekAcrossYearBoundary(t *testing.T) {
	// Week containing 2026-01-01 starts Monday 2025-12-29.
	jan1 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local)
	r := New("monday").Range(jan1)
	if !r.From.Equal(date(2025, time.December, 29)) {
		t.Errorf("From = %v, want 2025-12-29", r.From)
	}
	if r.Label != "29 Dec 2025 – 4 Jan 2026" {
		t.Errorf("Label = %q", r.Label)
	}
}

func TestRange_Month(t *testing.T) {
	n := New("monday")
	n.SetMode(ModeMonth)
	r := n.Range(refNow)

	if !r.From.Equal(date(2026, time.January, 1)) {
		t.Errorf("From = %v, want 2026-01-01", r.From)
	}
	if !r.To.Equal(date(2026, time.February, 1)) {
		t.Errorf("To = %v, want 2026-02-01", r.To)
	}
	if r.Label != "January 2026" {
		t.Errorf("Label = %q", r.Label)
	}
}

func TestRange_MonthOffsetAcrossYear(t *testing.T) {
	n := New("monday")
	n.SetMode(ModeMonth)
	n.Previous() // December 2025
	r := n.Range(refNow)

	if !r.From.Equal(date(2025, time.December, 1)) {
		t.Errorf("From = %v, want 2025-12-01", r.From)
	}
	if r.Label != "December 2025" {
		t.Errorf("Label = %q", r.Label)
	}
}

func TestSetMode_ResetsOffset(t *testing.T) {
	n := New("monday")
	n.Previous()
	n.Previous()

	n.SetMode(ModeMonth)
	if n.Offset() != 0 {
		t.Errorf("expected offset reset on mode switch, got %d", n.Offset())
	}

	// Setting the same mode keeps the offset.
	n.Previous()
	n.SetMode(ModeMonth)
	if n.Offset() != -1 {
		t.Errorf("expected offset preserved for same mode, got %d", n.Offset())
	}
}

func TestRange_Contains(t *testing.T) {
	r := New("monday").Range(refNow) // [2026-01-26, 2026-02-02)

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{name: "first day included", day: date(2026, time.January, 26), want: true},
		{name: "last day included", day: date(2026, time.February, 1), want: true},
		{name: "upper bound excluded", day: date(2026, time.February, 2), want: false},
		{name: "before range", day: date(2026, time.January, 25), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.day); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}
