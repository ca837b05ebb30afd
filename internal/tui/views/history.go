package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stint-sh/stint/internal/entry"
	"github.com/stint-sh/stint/internal/period"
	"github.com/stint-sh/stint/internal/tracker"
	"github.com/stint-sh/stint/internal/tui/ui"
	"github.com/stint-sh/stint/internal/view"
)

// HistoryModel renders the grouped entry history for the active period.
type HistoryModel struct {
	tracker *tracker.Tracker
	styles  ui.Styles
	keys    ui.KeyMap

	width    int
	height   int
	grouping view.Grouping
	model    view.Model
	cursor   int
	project  int    // picked project id, 0 until chosen
	picker   int    // project picker position while unchosen
	pending  string // entry id awaiting delete confirmation
	err      error
}

// NewHistoryModel creates a new history view model
func NewHistoryModel(t *tracker.Tracker, styles ui.Styles, keys ui.KeyMap) HistoryModel {
	m := HistoryModel{
		tracker:  t,
		styles:   styles,
		keys:     keys,
		grouping: view.GroupByDay,
		project:  t.SelectedProject(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode reports whether a delete confirmation is pending.
func (m HistoryModel) IsInputMode() bool {
	return m.pending != ""
}

func (m *HistoryModel) refresh() {
	// byProject aggregates across all projects; any non-zero id switches
	// the view-model out of its no-project state. byDay stays scoped to
	// the picked project.
	if m.grouping == view.GroupByProject {
		m.tracker.SelectProject(-1)
	} else {
		m.tracker.SelectProject(m.project)
	}
	m.model = m.tracker.View(m.grouping)
	if max := len(m.visibleEntries()) - 1; m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// visibleEntries flattens the groups in render order so the cursor can
// walk individual entries.
func (m HistoryModel) visibleEntries() []entry.TimeEntry {
	var out []entry.TimeEntry
	for _, g := range m.model.Groups {
		out = append(out, g.Entries...)
	}
	return out
}

// Update implements tea.Model
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.pending != "" {
		switch keyMsg.String() {
		case "y", "enter":
			m.err = m.tracker.Delete(m.pending)
			m.pending = ""
			m.refresh()
		case "n", "esc":
			m.pending = ""
		}
		return m, nil
	}

	// No project picked yet: the keys drive the picker instead.
	if m.model.NoProject {
		projects := m.tracker.Catalog().Projects()
		switch {
		case key.Matches(keyMsg, m.keys.Up):
			if m.picker > 0 {
				m.picker--
			}
		case key.Matches(keyMsg, m.keys.Down):
			if m.picker < len(projects)-1 {
				m.picker++
			}
		case key.Matches(keyMsg, m.keys.Select):
			if m.picker < len(projects) {
				m.project = projects[m.picker].ID
				m.refresh()
			}
		case key.Matches(keyMsg, m.keys.GroupToggle):
			m.grouping = view.GroupByProject
			m.refresh()
		}
		return m, nil
	}

	nav := m.tracker.Navigator()
	switch {
	case key.Matches(keyMsg, m.keys.Left):
		nav.Previous()
		m.refresh()
	case key.Matches(keyMsg, m.keys.Right):
		nav.Next()
		m.refresh()
	case key.Matches(keyMsg, m.keys.ResetPeriod):
		nav.Reset()
		m.refresh()
	case key.Matches(keyMsg, m.keys.Week):
		nav.SetMode(period.ModeWeek)
		m.refresh()
	case key.Matches(keyMsg, m.keys.Month):
		nav.SetMode(period.ModeMonth)
		m.refresh()
	case key.Matches(keyMsg, m.keys.GroupToggle):
		if m.grouping == view.GroupByDay {
			m.grouping = view.GroupByProject
		} else {
			m.grouping = view.GroupByDay
		}
		m.refresh()
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.visibleEntries())-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Delete):
		entries := m.visibleEntries()
		if m.cursor < len(entries) {
			m.pending = entries[m.cursor].ID
		}
	}
	return m, nil
}

// View implements tea.Model
func (m HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.PeriodLabel.Render(m.model.PeriodLabel))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if m.model.NoProject {
		b.WriteString(m.styles.Muted.Render("Pick a project:"))
		b.WriteString("\n\n")
		projects := m.tracker.Catalog().Projects()
		if len(projects) == 0 {
			b.WriteString(m.styles.Muted.Render("No projects available."))
			return b.String()
		}
		for i, p := range projects {
			line := "  " + p.Name
			if p.Client != "" {
				line += m.styles.Muted.Render(" (" + p.Client + ")")
			}
			if i == m.picker {
				line = m.styles.EntrySelected.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		return b.String()
	}
	if m.model.Empty {
		b.WriteString(m.styles.Muted.Render("No entries in this period."))
		return b.String()
	}

	row := 0
	for _, g := range m.model.Groups {
		header := fmt.Sprintf("%s  %s",
			m.styles.GroupHeader.Render(g.Label),
			m.styles.GroupTotal.Render(entry.FormatMinutes(g.TotalMinutes)))
		b.WriteString(header)
		b.WriteString("\n")
		for _, e := range g.Entries {
			line := m.renderEntry(e)
			if row == m.cursor {
				if m.pending == e.ID {
					line += m.styles.Warning.Render("  delete? (y/n)")
				}
				b.WriteString(m.styles.EntrySelected.Render(line))
			} else {
				b.WriteString(m.styles.EntryNormal.Render(line))
			}
			b.WriteString("\n")
			row++
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.GrandTotal.Render(
		fmt.Sprintf("Total: %s", entry.FormatMinutes(m.model.TotalMinutes))))
	return b.String()
}

func (m HistoryModel) renderEntry(e entry.TimeEntry) string {
	clock := "          "
	if e.HasClockRange() {
		clock = fmt.Sprintf("%s-%s", e.StartTime, e.EndTime)
	}
	line := fmt.Sprintf("  %s  %-20s %8s",
		m.styles.EntryTime.Render(clock),
		e.ProjectName,
		m.styles.EntryDuration.Render(entry.FormatMinutes(e.DurationMinutes)))
	if e.Notes != "" {
		line += "  " + m.styles.Muted.Render(e.Notes)
	}
	return line
}
