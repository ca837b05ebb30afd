package timer

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// StateFile is the name of the persisted timer state file
const StateFile = "timer.json"

// StatePath returns the timer state file path inside the data dir.
func StatePath(dataDir string) string {
	return filepath.Join(dataDir, StateFile)
}

// SaveState writes the timer to the state file using a temp file and
// rename so a crash never leaves a half-written state behind.
func SaveState(path string, t Timer) error {
	// Timer contains only JSON-safe types, so Marshal cannot fail
	data, _ := json.MarshalIndent(t, "", "  ")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadState reads the persisted timer. A missing file means no timer
// has been started; it returns an idle timer.
func LoadState(path string) (Timer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Timer{Phase: PhaseIdle}, nil
		}
		return Timer{}, err
	}
	var t Timer
	if err := json.Unmarshal(data, &t); err != nil {
		return Timer{}, err
	}
	if t.Phase == "" {
		t.Phase = PhaseIdle
	}
	return t, nil
}

// ClearState removes the state file. Missing file is not an error.
func ClearState(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
