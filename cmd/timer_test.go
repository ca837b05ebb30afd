package cmd

import (
	"strings"
	"testing"
)

func TestTimerLifecycle(t *testing.T) {
	td := setupTestDeps(t)

	startTimer("1")
	if td.exitCode != 0 {
		t.Fatalf("start: exit code = %d, stderr: %s", td.exitCode, td.stderr)
	}
	if !strings.Contains(td.stdout.String(), "Timer started for Web Design") {
		t.Errorf("unexpected start output:\n%s", td.stdout)
	}

	td.stdout.Reset()
	showTimerStatus()
	if !strings.Contains(td.stdout.String(), "Running: Web Design") {
		t.Errorf("unexpected status output:\n%s", td.stdout)
	}

	td.stdout.Reset()
	stopTimer()
	if td.exitCode != 0 {
		t.Fatalf("stop: exit code = %d, stderr: %s", td.exitCode, td.stderr)
	}
	if !strings.Contains(td.stdout.String(), "Recorded 1m on Web Design") {
		t.Errorf("unexpected stop output:\n%s", td.stdout)
	}

	sess, err := newSession()
	if err != nil {
		t.Fatalf("newSession failed: %v", err)
	}
	entries := sess.tracker.Entries()
	if len(entries) != 1 || entries[0].DurationMinutes != 1 {
		t.Errorf("expected a one-minute recorded entry, got %+v", entries)
	}
}

func TestStartTimer_AlreadyRunning(t *testing.T) {
	td := setupTestDeps(t)

	startTimer("1")
	startTimer("2")

	if td.exitCode != 1 {
		t.Fatalf("exit code = %d, want 1", td.exitCode)
	}
	if !strings.Contains(td.stderr.String(), "already running") {
		t.Errorf("expected already-running error, got:\n%s", td.stderr)
	}
}

func TestPauseResume(t *testing.T) {
	td := setupTestDeps(t)

	startTimer("1")

	td.stdout.Reset()
	transitionTimer("pause")
	if !strings.Contains(td.stdout.String(), "Timer paused for Web Design") {
		t.Errorf("unexpected pause output:\n%s", td.stdout)
	}

	td.stdout.Reset()
	showTimerStatus()
	if !strings.Contains(td.stdout.String(), "Paused: Web Design") {
		t.Errorf("unexpected status output:\n%s", td.stdout)
	}

	td.stdout.Reset()
	transitionTimer("resume")
	if !strings.Contains(td.stdout.String(), "Timer resumed for Web Design") {
		t.Errorf("unexpected resume output:\n%s", td.stdout)
	}
}

func TestStopTimer_NoneRunning(t *testing.T) {
	td := setupTestDeps(t)

	stopTimer()

	if td.exitCode != 1 {
		t.Fatalf("exit code = %d, want 1", td.exitCode)
	}
	if !strings.Contains(td.stderr.String(), "no timer is running") {
		t.Errorf("expected no-timer error, got:\n%s", td.stderr)
	}
}

func TestStatus_Idle(t *testing.T) {
	td := setupTestDeps(t)

	showTimerStatus()

	if !strings.Contains(td.stdout.String(), "No timer running") {
		t.Errorf("unexpected status output:\n%s", td.stdout)
	}
}
