// Package view computes the history view-model: entries filtered to
// the active period, bucketed by day or by project, with totals.
// Everything here is a pure function over the entry collection.
package view

import (
	"fmt"
	"sort"

	"github.com/stint-sh/stint/internal/entry"
	"github.com/stint-sh/stint/internal/period"
)

// Grouping selects the history bucketing mode
type Grouping string

const (
	// GroupByDay buckets the selected project's entries per calendar day.
	GroupByDay Grouping = "day"
	// GroupByProject buckets entries of all projects per project.
	GroupByProject Grouping = "project"
)

// Group is one bucket of entries sharing a day or a project.
type Group struct {
	Label        string
	TotalMinutes int
	Entries      []entry.TimeEntry
}

// Model is the computed history view. It is recomputed on every
// relevant change and never persisted.
type Model struct {
	Groups       []Group
	TotalMinutes int
	PeriodLabel  string

	// NoProject is set when no project is selected; Empty is set when a
	// project is selected but nothing falls inside the period. The
	// renderer must distinguish the two.
	NoProject bool
	Empty     bool
}

// NameFunc resolves a display name for a project id, given the
// denormalized name recorded on an entry as fallback.
type NameFunc func(projectID int, fallback string) string

// Build computes the view-model for the given collection, selected
// project, period range, and grouping mode.
//
// Day grouping is project-scoped; project grouping is cross-project (it
// shows all projects in the period, mirroring the two history views).
// A project must be selected either way.
func Build(entries []entry.TimeEntry, selectedProject int, r period.Range, grouping Grouping, name NameFunc) Model {
	m := Model{PeriodLabel: r.Label}
	if selectedProject == 0 {
		m.NoProject = true
		return m
	}
	if name == nil {
		name = func(projectID int, fallback string) string {
			if fallback != "" {
				return fallback
			}
			return fmt.Sprintf("Project %d", projectID)
		}
	}

	var filtered []entry.TimeEntry
	for _, e := range entries {
		if grouping == GroupByDay && e.ProjectID != selectedProject {
			continue
		}
		day, err := entry.ParseDate(e.Date)
		if err != nil || !r.Contains(day) {
			continue
		}
		filtered = append(filtered, e)
	}

	if len(filtered) == 0 {
		m.Empty = true
		return m
	}

	sortRecentFirst(filtered)

	switch grouping {
	case GroupByProject:
		m.Groups = groupByProject(filtered, name)
	default:
		m.Groups = groupByDay(filtered)
	}

	for _, g := range m.Groups {
		m.TotalMinutes += g.TotalMinutes
	}
	return m
}

// sortRecentFirst orders entries by date descending, then start time
// descending; entries without a start time sort after those with one
// on the same date.
func sortRecentFirst(entries []entry.TimeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		if (a.StartTime != "") != (b.StartTime != "") {
			return a.StartTime != ""
		}
		return a.StartTime > b.StartTime
	})
}

func groupByDay(entries []entry.TimeEntry) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, e := range entries {
		i, ok := index[e.Date]
		if !ok {
			i = len(groups)
			index[e.Date] = i
			groups = append(groups, Group{Label: formatDayLabel(e.Date)})
		}
		groups[i].Entries = append(groups[i].Entries, e)
		groups[i].TotalMinutes += e.DurationMinutes
	}
	// Entries are already sorted date-descending, so groups come out
	// ordered descending by date as well.
	return groups
}

// groupByProject buckets entries per project, ordered by total duration
// descending with ties broken by label ascending.
func groupByProject(entries []entry.TimeEntry, name NameFunc) []Group {
	var groups []Group
	index := make(map[int]int)
	for _, e := range entries {
		i, ok := index[e.ProjectID]
		if !ok {
			i = len(groups)
			index[e.ProjectID] = i
			groups = append(groups, Group{Label: name(e.ProjectID, e.ProjectName)})
		}
		groups[i].Entries = append(groups[i].Entries, e)
		groups[i].TotalMinutes += e.DurationMinutes
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].TotalMinutes != groups[j].TotalMinutes {
			return groups[i].TotalMinutes > groups[j].TotalMinutes
		}
		return groups[i].Label < groups[j].Label
	})
	return groups
}

func formatDayLabel(date string) string {
	day, err := entry.ParseDate(date)
	if err != nil {
		return date
	}
	return day.Format("Mon, 2 Jan 2006")
}
