package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/stint-sh/stint/internal/entry"
)

var testNow = time.Date(2026, 1, 26, 14, 0, 0, 0, time.Local)

func TestProjectSelected(t *testing.T) {
	if errs := ProjectSelected(1); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
	errs := ProjectSelected(0)
	if len(errs) != 1 || errs[0].Code != CodeMissingField || errs[0].Field != "projectId" {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		endTime  string
		wantCode Code
	}{
		{name: "valid past date", date: "2026-01-20"},
		{name: "today without end time", date: "2026-01-26"},
		{name: "today with end time before now", date: "2026-01-26", endTime: "13:00"},
		{name: "missing", date: "", wantCode: CodeMissingField},
		{name: "malformed", date: "26-01-2026", wantCode: CodeInvalidFormat},
		{name: "nonsense", date: "2026-02-30", wantCode: CodeInvalidFormat},
		{name: "tomorrow", date: "2026-01-27", wantCode: CodeFutureDate},
		{name: "today with end time after now", date: "2026-01-26", endTime: "15:00", wantCode: CodeFutureDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Date(tt.date, tt.endTime, testNow)
			if tt.wantCode == "" {
				if len(errs) != 0 {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) != 1 || errs[0].Code != tt.wantCode {
				t.Errorf("expected code %s, got %v", tt.wantCode, errs)
			}
		})
	}
}

func TestTimeRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		wantCode Code
	}{
		{name: "valid range", start: "10:00", end: "11:00"},
		{name: "equal times", start: "10:00", end: "10:00", wantCode: CodeInvalidRange},
		{name: "end before start", start: "11:00", end: "10:00", wantCode: CodeInvalidRange},
		{name: "bad start", start: "25:00", end: "11:00", wantCode: CodeInvalidFormat},
		{name: "bad end", start: "10:00", end: "11am", wantCode: CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := TimeRange(tt.start, tt.end)
			if tt.wantCode == "" {
				if len(errs) != 0 {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if !errs.Has(tt.wantCode) {
				t.Errorf("expected code %s, got %v", tt.wantCode, errs)
			}
		})
	}
}

func TestTimeRange_BothMalformed(t *testing.T) {
	errs := TimeRange("nope", "also nope")
	if len(errs) != 2 {
		t.Errorf("expected one error per field, got %v", errs)
	}
}

func TestDuration(t *testing.T) {
	ptr := func(f float64) *float64 { return &f }

	tests := []struct {
		name     string
		minutes  *float64
		wantCode Code
	}{
		{name: "valid", minutes: ptr(60)},
		{name: "absent", minutes: nil, wantCode: CodeMissingField},
		{name: "zero", minutes: ptr(0), wantCode: CodeNotPositive},
		{name: "negative", minutes: ptr(-5), wantCode: CodeNotPositive},
		{name: "fractional", minutes: ptr(7.5), wantCode: CodeNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Duration(tt.minutes)
			if tt.wantCode == "" {
				if len(errs) != 0 {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) != 1 || errs[0].Code != tt.wantCode {
				t.Errorf("expected code %s, got %v", tt.wantCode, errs)
			}
		})
	}
}

func TestComputeDuration(t *testing.T) {
	if got := ComputeDuration("10:00", "11:00"); got != 60 {
		t.Errorf("ComputeDuration = %d, want 60", got)
	}
}

func TestOverlap(t *testing.T) {
	existing := []entry.TimeEntry{
		{ID: "a", ProjectID: 1, Date: "2026-01-20", StartTime: "10:00", EndTime: "11:00", DurationMinutes: 60},
		{ID: "b", ProjectID: 2, Date: "2026-01-20", StartTime: "14:00", EndTime: "15:00", DurationMinutes: 60},
		{ID: "c", ProjectID: 1, Date: "2026-01-21", DurationMinutes: 30}, // timer-derived, no range
	}

	tests := []struct {
		name      string
		candidate entry.TimeEntry
		ignoreID  string
		overlap   bool
	}{
		{
			name:      "inside existing interval",
			candidate: entry.TimeEntry{Date: "2026-01-20", StartTime: "10:30", EndTime: "11:30"},
			overlap:   true,
		},
		{
			name:      "other project still overlaps",
			candidate: entry.TimeEntry{ProjectID: 3, Date: "2026-01-20", StartTime: "14:30", EndTime: "14:45"},
			overlap:   true,
		},
		{
			name:      "touching endpoints are allowed",
			candidate: entry.TimeEntry{Date: "2026-01-20", StartTime: "11:00", EndTime: "12:00"},
			overlap:   false,
		},
		{
			name:      "different date",
			candidate: entry.TimeEntry{Date: "2026-01-22", StartTime: "10:30", EndTime: "11:30"},
			overlap:   false,
		},
		{
			name:      "timer-derived candidate skipped",
			candidate: entry.TimeEntry{Date: "2026-01-20", DurationMinutes: 90},
			overlap:   false,
		},
		{
			name:      "edit ignores own interval",
			candidate: entry.TimeEntry{ID: "a", Date: "2026-01-20", StartTime: "10:15", EndTime: "10:45"},
			ignoreID:  "a",
			overlap:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Overlap(tt.candidate, existing, tt.ignoreID)
			if tt.overlap && !errs.Has(CodeOverlap) {
				t.Errorf("expected overlap error, got %v", errs)
			}
			if !tt.overlap && len(errs) != 0 {
				t.Errorf("expected no errors, got %v", errs)
			}
		})
	}
}

func TestDailyCap(t *testing.T) {
	existing := []entry.TimeEntry{
		{ID: "a", ProjectID: 1, Date: "2026-01-26", DurationMinutes: 300},
		{ID: "b", ProjectID: 1, Date: "2026-01-26", DurationMinutes: 200},
		{ID: "c", ProjectID: 2, Date: "2026-01-26", DurationMinutes: 590},
		{ID: "d", ProjectID: 1, Date: "2026-01-25", DurationMinutes: 600},
	}

	t.Run("within cap", func(t *testing.T) {
		candidate := entry.TimeEntry{ProjectID: 1, Date: "2026-01-26", DurationMinutes: 100}
		if errs := DailyCap(candidate, existing, ""); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("exceeds cap reports remaining", func(t *testing.T) {
		candidate := entry.TimeEntry{ProjectID: 1, Date: "2026-01-26", DurationMinutes: 120}
		errs := DailyCap(candidate, existing, "")
		if !errs.Has(CodeCapExceeded) {
			t.Fatalf("expected cap error, got %v", errs)
		}
		if !strings.Contains(errs[0].Message, "100 minutes remaining") {
			t.Errorf("expected remaining minutes in message, got %q", errs[0].Message)
		}
	})

	t.Run("cap is per project", func(t *testing.T) {
		candidate := entry.TimeEntry{ProjectID: 3, Date: "2026-01-26", DurationMinutes: 600}
		if errs := DailyCap(candidate, existing, ""); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("cap is per day", func(t *testing.T) {
		candidate := entry.TimeEntry{ProjectID: 1, Date: "2026-01-27", DurationMinutes: 600}
		if errs := DailyCap(candidate, existing, ""); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("edit excludes prior self", func(t *testing.T) {
		candidate := entry.TimeEntry{ID: "b", ProjectID: 1, Date: "2026-01-26", DurationMinutes: 250}
		if errs := DailyCap(candidate, existing, "b"); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("already over cap reports zero remaining", func(t *testing.T) {
		over := append(existing, entry.TimeEntry{ID: "e", ProjectID: 1, Date: "2026-01-26", DurationMinutes: 200})
		candidate := entry.TimeEntry{ProjectID: 1, Date: "2026-01-26", DurationMinutes: 10}
		errs := DailyCap(candidate, over, "")
		if !errs.Has(CodeCapExceeded) {
			t.Fatalf("expected cap error, got %v", errs)
		}
		if !strings.Contains(errs[0].Message, "0 minutes remaining") {
			t.Errorf("expected zero remaining in message, got %q", errs[0].Message)
		}
	})
}

func TestRemaining(t *testing.T) {
	existing := []entry.TimeEntry{
		{ID: "a", ProjectID: 1, Date: "2026-01-26", DurationMinutes: 500},
	}
	if got := Remaining(1, "2026-01-26", existing, ""); got != 100 {
		t.Errorf("Remaining = %d, want 100", got)
	}
	if got := Remaining(1, "2026-01-26", existing, "a"); got != 600 {
		t.Errorf("Remaining ignoring self = %d, want 600", got)
	}
	if got := Remaining(2, "2026-01-26", existing, ""); got != 600 {
		t.Errorf("Remaining other project = %d, want 600", got)
	}
}

func TestErrors_ErrorJoinsMessages(t *testing.T) {
	errs := Errors{
		{Field: "date", Code: CodeMissingField, Message: "Date is required"},
		{Field: "durationMinutes", Code: CodeNotPositive, Message: "Duration must be a positive number"},
	}
	want := "Date is required, Duration must be a positive number"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
}
