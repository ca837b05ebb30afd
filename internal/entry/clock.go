package entry

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the canonical calendar date format for entries
	DateLayout = "2006-01-02"
	// ClockLayout is the canonical wall-clock time-of-day format
	ClockLayout = "15:04"
)

// ParseDate parses a YYYY-MM-DD calendar date.
// The returned time is midnight local time of that day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate formats a time as a YYYY-MM-DD calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseClock parses an HH:MM wall-clock time and returns minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MinutesBetween returns the number of minutes from start to end,
// both HH:MM wall-clock times on the same day.
// Callers must validate start < end first; wrapping past midnight is
// not supported.
func MinutesBetween(start, end string) (int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}

// FormatMinutes formats a minute count as a compact duration string.
// Examples: "45m", "2h", "1h30m"
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
