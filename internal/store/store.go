// Package store persists the whole entry collection as a single JSON
// blob under one logical key. Load tolerates missing or corrupt data by
// degrading to an empty collection; Save replaces the blob in full.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"github.com/stint-sh/stint/internal/entry"
)

const (
	// AppName is the application name used for the data directory
	AppName = "stint"
	// EntriesKey is the logical key the collection blob lives under
	EntriesKey = "entries.json"
)

// DefaultDataDir returns the default data directory
// (UserConfigDir()/stint), creating it if needed.
func DefaultDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dataDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// Store is the persistence boundary for the entry collection.
type Store struct {
	d *diskv.Diskv

	// Warnings receives recovered-corruption notices; defaults to
	// os.Stderr.
	Warnings io.Writer
}

// New creates a Store rooted at the given data directory.
func New(dataDir string) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     dataDir,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		Warnings: os.Stderr,
	}
}

// persistedEntry mirrors entry.TimeEntry plus the legacy lowercase
// projectid field seen in old records.
type persistedEntry struct {
	entry.TimeEntry
	LegacyProjectID int `json:"projectid,omitempty"`
}

// Load reads the persisted collection. A missing key, malformed JSON,
// or a value that is not an array all degrade to an empty collection
// with a logged warning; Load never fails.
//
// Legacy records are normalized on the way in: lowercase projectid
// becomes projectId, and entries without an id get one assigned.
func (s *Store) Load() []entry.TimeEntry {
	data, err := s.d.Read(EntriesKey)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.warnf("store: read %s: %v", EntriesKey, err)
		}
		return []entry.TimeEntry{}
	}

	var records []persistedEntry
	if err := json.Unmarshal(data, &records); err != nil {
		s.warnf("store: corrupt entry data, starting with an empty collection: %v", err)
		return []entry.TimeEntry{}
	}

	entries := make([]entry.TimeEntry, 0, len(records))
	for _, rec := range records {
		e := rec.TimeEntry
		if e.ProjectID == 0 && rec.LegacyProjectID != 0 {
			e.ProjectID = rec.LegacyProjectID
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		entries = append(entries, e)
	}
	return entries
}

// Save serializes the full collection and replaces the persisted blob.
func (s *Store) Save(entries []entry.TimeEntry) error {
	if entries == nil {
		entries = []entry.TimeEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("store: marshal entries: %w", err)
	}
	if err := s.d.Write(EntriesKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", EntriesKey, err)
	}
	return nil
}

func (s *Store) warnf(format string, args ...any) {
	w := s.Warnings
	if w == nil {
		w = os.Stderr
	}
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
