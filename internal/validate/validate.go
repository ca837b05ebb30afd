// Package validate implements the entry validation rules: required
// fields, date and clock-range checks, interval overlap detection, and
// the per-project daily cap. All functions are pure; callers collect
// the returned field errors and decide what to do with them.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/stint-sh/stint/internal/entry"
)

// DailyCapMinutes is the per-project, per-day limit (10 hours).
const DailyCapMinutes = 600

// Code classifies a validation failure
type Code string

const (
	CodeMissingField  Code = "missing_field"
	CodeInvalidFormat Code = "invalid_format"
	CodeInvalidRange  Code = "invalid_range"
	CodeFutureDate    Code = "future_date"
	CodeNotPositive   Code = "not_positive"
	CodeNotInteger    Code = "not_integer"
	CodeOverlap       Code = "overlap"
	CodeCapExceeded   Code = "cap_exceeded"
)

// FieldError is a single validation failure tagged with the field it
// concerns.
type FieldError struct {
	Field   string `json:"field"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Message
}

// Errors is the accumulated result of validating a candidate entry.
// An empty list means the candidate is valid.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, ", ")
}

// Has reports whether any error carries the given code.
func (e Errors) Has(code Code) bool {
	for _, fe := range e {
		if fe.Code == code {
			return true
		}
	}
	return false
}

// ProjectSelected checks that a project has been chosen.
func ProjectSelected(projectID int) Errors {
	if projectID == 0 {
		return Errors{{Field: "projectId", Code: CodeMissingField, Message: "Please select a project"}}
	}
	return nil
}

// Date checks that the date is present, well-formed, and not in the
// future. When endTime is given and the date is today, the end of the
// candidate range must not be after the current moment.
func Date(date, endTime string, now time.Time) Errors {
	if strings.TrimSpace(date) == "" {
		return Errors{{Field: "date", Code: CodeMissingField, Message: "Date is required"}}
	}
	day, err := entry.ParseDate(date)
	if err != nil {
		return Errors{{Field: "date", Code: CodeInvalidFormat, Message: "Invalid date. Please select a valid date"}}
	}

	// Date-only entries are judged by the day alone so that today is
	// always allowed; with an end time the combined moment must not be
	// past the current clock.
	future := day.After(startOfDay(now))
	if end, err := entry.ParseClock(endTime); endTime != "" && err == nil {
		future = day.Add(time.Duration(end) * time.Minute).After(now)
	}
	if future {
		return Errors{{Field: "date", Code: CodeFutureDate, Message: "Date must not be in the future"}}
	}
	return nil
}

// TimeRange checks that start and end are well-formed HH:MM times with
// start strictly before end. Overnight wraparound is not supported.
func TimeRange(startTime, endTime string) Errors {
	var errs Errors
	start, err := entry.ParseClock(startTime)
	if err != nil {
		errs = append(errs, FieldError{Field: "startTime", Code: CodeInvalidFormat, Message: "Start time must be HH:MM"})
	}
	end, err := entry.ParseClock(endTime)
	if err != nil {
		errs = append(errs, FieldError{Field: "endTime", Code: CodeInvalidFormat, Message: "End time must be HH:MM"})
	}
	if len(errs) > 0 {
		return errs
	}
	if start >= end {
		return Errors{{Field: "endTime", Code: CodeInvalidRange, Message: "End time must be after start time"}}
	}
	return nil
}

// Duration checks a directly entered duration (no explicit start/end).
// A nil pointer means the field was absent.
func Duration(minutes *float64) Errors {
	if minutes == nil {
		return Errors{{Field: "durationMinutes", Code: CodeMissingField, Message: "Duration is required"}}
	}
	if *minutes <= 0 {
		return Errors{{Field: "durationMinutes", Code: CodeNotPositive, Message: "Duration must be a positive number"}}
	}
	if *minutes != float64(int(*minutes)) {
		return Errors{{Field: "durationMinutes", Code: CodeNotInteger, Message: "Duration must be a whole number"}}
	}
	return nil
}

// ComputeDuration derives a duration in minutes from a start/end pair.
// Contract: only call after TimeRange has passed, so the result is
// strictly positive.
func ComputeDuration(startTime, endTime string) int {
	minutes, err := entry.MinutesBetween(startTime, endTime)
	if err != nil {
		return 0
	}
	return minutes
}

// Overlap checks the candidate's [start,end) interval against every
// existing entry on the same date, regardless of project. Entries
// without a clock range cannot overlap. ignoreID excludes the entry
// being edited from the comparison.
func Overlap(candidate entry.TimeEntry, existing []entry.TimeEntry, ignoreID string) Errors {
	if !candidate.HasClockRange() {
		return nil
	}
	candStart, err := entry.ParseClock(candidate.StartTime)
	if err != nil {
		return nil
	}
	candEnd, err := entry.ParseClock(candidate.EndTime)
	if err != nil {
		return nil
	}

	for _, e := range existing {
		if e.ID == ignoreID || e.Date != candidate.Date || !e.HasClockRange() {
			continue
		}
		start, err := entry.ParseClock(e.StartTime)
		if err != nil {
			continue
		}
		end, err := entry.ParseClock(e.EndTime)
		if err != nil {
			continue
		}
		// Half-open intervals: [a,b) and [c,d) overlap iff a < d && c < b.
		if candStart < end && start < candEnd {
			return Errors{{
				Field: "startTime",
				Code:  CodeOverlap,
				Message: fmt.Sprintf("Entry overlaps an existing entry (%s–%s on %s)",
					e.StartTime, e.EndTime, e.Date),
			}}
		}
	}
	return nil
}

// DailyCap checks the 600-minute per-project daily limit. The sum of
// existing durations for the candidate's project and date (excluding
// ignoreID) plus the candidate's duration must not exceed the cap.
// The error message reports how many minutes remain.
func DailyCap(candidate entry.TimeEntry, existing []entry.TimeEntry, ignoreID string) Errors {
	sum := 0
	for _, e := range existing {
		if e.ID == ignoreID {
			continue
		}
		if e.ProjectID == candidate.ProjectID && e.Date == candidate.Date {
			sum += e.DurationMinutes
		}
	}
	if sum+candidate.DurationMinutes > DailyCapMinutes {
		remaining := DailyCapMinutes - sum
		if remaining < 0 {
			remaining = 0
		}
		return Errors{{
			Field: "durationMinutes",
			Code:  CodeCapExceeded,
			Message: fmt.Sprintf("Daily limit of %d minutes reached for this project: %d minutes remaining on %s",
				DailyCapMinutes, remaining, candidate.Date),
		}}
	}
	return nil
}

// Remaining returns how many minutes are still available for the given
// project and date under the daily cap.
func Remaining(projectID int, date string, existing []entry.TimeEntry, ignoreID string) int {
	sum := 0
	for _, e := range existing {
		if e.ID == ignoreID {
			continue
		}
		if e.ProjectID == projectID && e.Date == date {
			sum += e.DurationMinutes
		}
	}
	remaining := DailyCapMinutes - sum
	if remaining < 0 {
		return 0
	}
	return remaining
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
