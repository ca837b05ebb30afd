// Package timer implements the stopwatch state machine:
// idle → running ⇄ paused → idle. Transitions are pure; rendering and
// entry creation are the caller's concern.
package timer

import (
	"errors"
	"math"
	"time"
)

// Phase is the timer's current state
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
	PhasePaused  Phase = "paused"
)

var (
	ErrAlreadyRunning = errors.New("timer is already running")
	ErrNotRunning     = errors.New("no timer is running")
	ErrNotPaused      = errors.New("timer is not paused")
)

// Timer accumulates elapsed time across pauses. The zero value is an
// idle timer.
type Timer struct {
	Phase       Phase         `json:"phase"`
	ProjectID   int           `json:"projectId"`
	ProjectName string        `json:"projectName,omitempty"`
	StartedAt   time.Time     `json:"startedAt"`
	Accumulated time.Duration `json:"accumulated"`
}

// Start begins timing for the given project. Fails unless idle.
func (t *Timer) Start(projectID int, projectName string, now time.Time) error {
	if t.Phase == PhaseRunning || t.Phase == PhasePaused {
		return ErrAlreadyRunning
	}
	t.Phase = PhaseRunning
	t.ProjectID = projectID
	t.ProjectName = projectName
	t.StartedAt = now
	t.Accumulated = 0
	return nil
}

// Pause suspends a running timer, banking the elapsed time.
func (t *Timer) Pause(now time.Time) error {
	if t.Phase != PhaseRunning {
		return ErrNotRunning
	}
	t.Accumulated += now.Sub(t.StartedAt)
	t.Phase = PhasePaused
	return nil
}

// Resume continues a paused timer.
func (t *Timer) Resume(now time.Time) error {
	if t.Phase != PhasePaused {
		return ErrNotPaused
	}
	t.StartedAt = now
	t.Phase = PhaseRunning
	return nil
}

// Elapsed returns the total tracked time so far.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	switch t.Phase {
	case PhaseRunning:
		return t.Accumulated + now.Sub(t.StartedAt)
	case PhasePaused:
		return t.Accumulated
	default:
		return 0
	}
}

// Stop ends the timer and returns the tracked duration in whole
// minutes, rounded to the nearest minute with a minimum of 1.
// The timer returns to idle.
func (t *Timer) Stop(now time.Time) (int, error) {
	if t.Phase == PhaseIdle {
		return 0, ErrNotRunning
	}
	elapsed := t.Elapsed(now)
	*t = Timer{Phase: PhaseIdle}

	minutes := int(math.Round(elapsed.Minutes()))
	if minutes < 1 {
		minutes = 1
	}
	return minutes, nil
}
