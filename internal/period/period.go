// Package period tracks the active history window: week or month mode
// plus a signed offset from the current period.
package period

import (
	"fmt"
	"time"
)

// Mode selects the period length
type Mode string

const (
	ModeWeek  Mode = "week"
	ModeMonth Mode = "month"
)

// Range is a concrete half-open [From, To) window with a display label.
type Range struct {
	From  time.Time
	To    time.Time
	Label string
}

// Contains reports whether the given day falls inside the range.
func (r Range) Contains(day time.Time) bool {
	return !day.Before(r.From) && day.Before(r.To)
}

// Navigator holds the session-scoped navigation state. The zero value
// is not usable; use New.
type Navigator struct {
	mode      Mode
	offset    int
	weekStart time.Weekday
}

// New creates a Navigator in week mode at the current period.
// weekStartDay is "monday" or "sunday"; anything else means Monday.
func New(weekStartDay string) *Navigator {
	weekStart := time.Monday
	if weekStartDay == "sunday" {
		weekStart = time.Sunday
	}
	return &Navigator{mode: ModeWeek, weekStart: weekStart}
}

// Mode returns the active mode.
func (n *Navigator) Mode() Mode {
	return n.mode
}

// Offset returns the signed offset from the current period.
func (n *Navigator) Offset() int {
	return n.offset
}

// SetMode switches between week and month view. Switching resets the
// offset so navigation position does not carry over between modes.
func (n *Navigator) SetMode(mode Mode) {
	if mode != n.mode {
		n.mode = mode
		n.offset = 0
	}
}

// Next moves one period forward.
func (n *Navigator) Next() {
	n.offset++
}

// Previous moves one period back.
func (n *Navigator) Previous() {
	n.offset--
}

// Reset returns to the current period.
func (n *Navigator) Reset() {
	n.offset = 0
}

// Range computes the concrete window for the active mode and offset,
// relative to the given reference time.
func (n *Navigator) Range(now time.Time) Range {
	switch n.mode {
	case ModeMonth:
		return monthRange(now, n.offset)
	default:
		return weekRange(now, n.offset, n.weekStart)
	}
}

func weekRange(now time.Time, offset int, weekStart time.Weekday) Range {
	from := startOfWeek(now, weekStart).AddDate(0, 0, 7*offset)
	to := from.AddDate(0, 0, 7)
	last := to.AddDate(0, 0, -1)

	// Always spell out month and year so week labels stay unambiguous
	// across year boundaries.
	var label string
	if from.Year() == last.Year() {
		label = fmt.Sprintf("%s – %s", from.Format("2 Jan"), last.Format("2 Jan 2006"))
	} else {
		label = fmt.Sprintf("%s – %s", from.Format("2 Jan 2006"), last.Format("2 Jan 2006"))
	}
	return Range{From: from, To: to, Label: label}
}

func monthRange(now time.Time, offset int) Range {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, offset, 0)
	to := from.AddDate(0, 1, 0)
	return Range{From: from, To: to, Label: from.Format("January 2006")}
}

func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	diff := int(day.Weekday()) - int(weekStart)
	if diff < 0 {
		diff += 7
	}
	return day.AddDate(0, 0, -diff)
}
