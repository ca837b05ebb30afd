package timer

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

var t0 = time.Date(2026, 1, 26, 9, 0, 0, 0, time.UTC)

func TestTimer_StartPauseResumeStop(t *testing.T) {
	var tm Timer

	if err := tm.Start(1, "Web Design", t0); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if tm.Phase != PhaseRunning {
		t.Errorf("phase = %s, want running", tm.Phase)
	}

	// 10 minutes of work, then pause
	if err := tm.Pause(t0.Add(10 * time.Minute)); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if got := tm.Elapsed(t0.Add(30 * time.Minute)); got != 10*time.Minute {
		t.Errorf("elapsed while paused = %v, want 10m", got)
	}

	// Resume 20 minutes later, work another 5
	if err := tm.Resume(t0.Add(30 * time.Minute)); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	minutes, err := tm.Stop(t0.Add(35 * time.Minute))
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if minutes != 15 {
		t.Errorf("Stop returned %d minutes, want 15 (pause gap excluded)", minutes)
	}
	if tm.Phase != PhaseIdle {
		t.Errorf("phase after stop = %s, want idle", tm.Phase)
	}
}

func TestTimer_InvalidTransitions(t *testing.T) {
	var tm Timer

	if err := tm.Pause(t0); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Pause on idle: got %v, want ErrNotRunning", err)
	}
	if err := tm.Resume(t0); !errors.Is(err, ErrNotPaused) {
		t.Errorf("Resume on idle: got %v, want ErrNotPaused", err)
	}
	if _, err := tm.Stop(t0); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Stop on idle: got %v, want ErrNotRunning", err)
	}

	if err := tm.Start(1, "", t0); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := tm.Start(2, "", t0); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Start: got %v, want ErrAlreadyRunning", err)
	}

	// Paused timers also refuse Start
	if err := tm.Pause(t0.Add(time.Minute)); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if err := tm.Start(2, "", t0); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("Start while paused: got %v, want ErrAlreadyRunning", err)
	}
}

func TestTimer_StopMinimumOneMinute(t *testing.T) {
	var tm Timer
	if err := tm.Start(1, "", t0); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	minutes, err := tm.Stop(t0.Add(5 * time.Second))
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if minutes != 1 {
		t.Errorf("Stop returned %d, want minimum of 1", minutes)
	}
}

func TestTimer_StopRoundsToNearestMinute(t *testing.T) {
	var tm Timer
	if err := tm.Start(1, "", t0); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	minutes, err := tm.Stop(t0.Add(9*time.Minute + 40*time.Second))
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if minutes != 10 {
		t.Errorf("Stop returned %d, want 10", minutes)
	}
}

func TestState_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), StateFile)

	// Missing file means idle
	tm, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if tm.Phase != PhaseIdle {
		t.Errorf("phase = %s, want idle for missing file", tm.Phase)
	}

	want := Timer{Phase: PhaseRunning, ProjectID: 2, ProjectName: "Consulting", StartedAt: t0, Accumulated: 3 * time.Minute}
	if err := SaveState(path, want); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	got, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if got.Phase != want.Phase || got.ProjectID != want.ProjectID || got.Accumulated != want.Accumulated {
		t.Errorf("loaded state mismatch: %+v", got)
	}
	if !got.StartedAt.Equal(want.StartedAt) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, want.StartedAt)
	}

	if err := ClearState(path); err != nil {
		t.Fatalf("ClearState failed: %v", err)
	}
	if err := ClearState(path); err != nil {
		t.Errorf("ClearState should be idempotent, got %v", err)
	}
}
