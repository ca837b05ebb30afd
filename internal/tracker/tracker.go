// Package tracker orchestrates the entry lifecycle: it owns the
// in-memory collection for the session, runs validation on every
// mutation, persists through the store, and recomputes the history
// view-model.
package tracker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stint-sh/stint/internal/entry"
	"github.com/stint-sh/stint/internal/period"
	"github.com/stint-sh/stint/internal/project"
	"github.com/stint-sh/stint/internal/store"
	"github.com/stint-sh/stint/internal/validate"
	"github.com/stint-sh/stint/internal/view"
)

var (
	ErrNotFound          = errors.New("entry not found")
	ErrNoProjectSelected = errors.New("no project selected")
)

// Tracker is the session state object. It is the only component that
// mutates the entry collection; aggregation and navigation are pure
// functions over it. A mutex serializes access so the HTTP server can
// share one Tracker across concurrent handlers.
type Tracker struct {
	store    *store.Store
	catalog  *project.Catalog
	nav      *period.Navigator
	mu       sync.Mutex
	entries  []entry.TimeEntry
	selected int

	// Now is the clock used for future-date checks; tests override it.
	Now func() time.Time
}

// New loads the persisted collection and returns a ready Tracker.
func New(s *store.Store, catalog *project.Catalog, nav *period.Navigator) *Tracker {
	return &Tracker{
		store:   s,
		catalog: catalog,
		nav:     nav,
		entries: s.Load(),
		Now:     time.Now,
	}
}

// CreateInput is a candidate entry. Exactly one of the two duration
// paths applies: an explicit StartTime/EndTime pair (manual flow), or
// DurationMinutes alone (timer and direct-entry flows).
type CreateInput struct {
	ProjectID       int
	Date            string
	StartTime       string
	EndTime         string
	DurationMinutes *float64
	Notes           string
}

// EditInput carries the changed fields for an edit; nil means keep the
// current value. The project cannot be changed after creation.
type EditInput struct {
	Date      *string
	StartTime *string
	EndTime   *string
	Notes     *string
}

// Entries returns a copy of the current collection; the Tracker keeps
// sole ownership of the backing slice.
func (t *Tracker) Entries() []entry.TimeEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]entry.TimeEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Navigator returns the period navigator for this session.
func (t *Tracker) Navigator() *period.Navigator {
	return t.nav
}

// Catalog returns the project catalog for name lookups.
func (t *Tracker) Catalog() *project.Catalog {
	return t.catalog
}

// SelectProject sets the active project for the session.
func (t *Tracker) SelectProject(projectID int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selected = projectID
}

// SelectedProject returns the active project id, 0 when none.
func (t *Tracker) SelectedProject() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selected
}

// Create validates the candidate against the current collection and,
// on success, appends it, persists, and returns the stored entry.
// On failure the collection is untouched and every collected validation
// error is returned together as a validate.Errors.
func (t *Tracker) Create(in CreateInput) (*entry.TimeEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	candidate := entry.TimeEntry{
		ProjectID:   in.ProjectID,
		ProjectName: t.catalog.Name(in.ProjectID, ""),
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Notes:       in.Notes,
	}

	var errs validate.Errors
	errs = append(errs, validate.ProjectSelected(in.ProjectID)...)
	errs = append(errs, validate.Date(in.Date, in.EndTime, t.Now())...)

	if in.StartTime != "" || in.EndTime != "" {
		rangeErrs := validate.TimeRange(in.StartTime, in.EndTime)
		errs = append(errs, rangeErrs...)
		if len(rangeErrs) == 0 {
			candidate.DurationMinutes = validate.ComputeDuration(in.StartTime, in.EndTime)
		}
	} else {
		durErrs := validate.Duration(in.DurationMinutes)
		errs = append(errs, durErrs...)
		if len(durErrs) == 0 {
			candidate.DurationMinutes = int(*in.DurationMinutes)
		}
	}

	// Overlap and cap checks only make sense once the basics hold.
	if len(errs) == 0 {
		errs = append(errs, validate.Overlap(candidate, t.entries, "")...)
		errs = append(errs, validate.DailyCap(candidate, t.entries, "")...)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	candidate.ID = uuid.NewString()
	t.entries = append(t.entries, candidate)
	if err := t.store.Save(t.entries); err != nil {
		// Roll the append back so memory and disk stay consistent.
		t.entries = t.entries[:len(t.entries)-1]
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}
	return &candidate, nil
}

// Edit re-validates the merged entry against the collection, excluding
// the entry's own prior state from overlap and cap checks, then
// replaces it in place and persists.
func (t *Tracker) Edit(id string, in EditInput) (*entry.TimeEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	merged := t.entries[idx]
	if in.Date != nil {
		merged.Date = *in.Date
	}
	if in.StartTime != nil {
		merged.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		merged.EndTime = *in.EndTime
	}
	if in.Notes != nil {
		merged.Notes = *in.Notes
	}

	var errs validate.Errors
	errs = append(errs, validate.Date(merged.Date, merged.EndTime, t.Now())...)
	if merged.StartTime != "" || merged.EndTime != "" {
		rangeErrs := validate.TimeRange(merged.StartTime, merged.EndTime)
		errs = append(errs, rangeErrs...)
		if len(rangeErrs) == 0 {
			merged.DurationMinutes = validate.ComputeDuration(merged.StartTime, merged.EndTime)
		}
	}
	if len(errs) == 0 {
		errs = append(errs, validate.Overlap(merged, t.entries, id)...)
		errs = append(errs, validate.DailyCap(merged, t.entries, id)...)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	prev := t.entries[idx]
	t.entries[idx] = merged
	if err := t.store.Save(t.entries); err != nil {
		t.entries[idx] = prev
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}
	return &merged, nil
}

// Delete removes the entry with the given id and persists. Deleting an
// unknown id returns ErrNotFound and leaves the collection unchanged.
func (t *Tracker) Delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	removed := t.entries[idx]
	t.entries = append(t.entries[:idx], t.entries[idx+1:]...)
	if err := t.store.Save(t.entries); err != nil {
		t.entries = append(t.entries[:idx], append([]entry.TimeEntry{removed}, t.entries[idx:]...)...)
		return fmt.Errorf("failed to save entries: %w", err)
	}
	return nil
}

// ResetProject removes every entry for the selected project and
// returns how many were removed. Requires a selected project.
func (t *Tracker) ResetProject() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.selected == 0 {
		return 0, ErrNoProjectSelected
	}
	kept := make([]entry.TimeEntry, 0, len(t.entries))
	removed := 0
	for _, e := range t.entries {
		if e.ProjectID == t.selected {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	if removed == 0 {
		return 0, nil
	}
	prev := t.entries
	t.entries = kept
	if err := t.store.Save(t.entries); err != nil {
		t.entries = prev
		return 0, fmt.Errorf("failed to save entries: %w", err)
	}
	return removed, nil
}

// Get returns the entry with the given id.
func (t *Tracker) Get(id string) (entry.TimeEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(id)
	if idx < 0 {
		return entry.TimeEntry{}, ErrNotFound
	}
	return t.entries[idx], nil
}

// View recomputes the history view-model for the active period and the
// given grouping mode.
func (t *Tracker) View(grouping view.Grouping) view.Model {
	t.mu.Lock()
	defer t.mu.Unlock()
	return view.Build(t.entries, t.selected, t.nav.Range(t.Now()), grouping, t.catalog.Name)
}

func (t *Tracker) indexOf(id string) int {
	for i, e := range t.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
