package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stint-sh/stint/internal/entry"
	"github.com/stint-sh/stint/internal/timer"
	"github.com/stint-sh/stint/internal/tracker"
	"github.com/stint-sh/stint/internal/tui/ui"
)

// TimerModel drives the running timer and converts stopped sessions
// into entries.
type TimerModel struct {
	tracker   *tracker.Tracker
	statePath string
	styles    ui.Styles
	keys      ui.KeyMap

	width  int
	height int
	timer  timer.Timer
	cursor int // project picker position when idle
	status string
	err    error
}

// tickMsg drives the elapsed display while the timer runs.
type tickMsg time.Time

// NewTimerModel creates a new timer view model
func NewTimerModel(t *tracker.Tracker, statePath string, styles ui.Styles, keys ui.KeyMap) TimerModel {
	m := TimerModel{
		tracker:   t,
		statePath: statePath,
		styles:    styles,
		keys:      keys,
	}
	if state, err := timer.LoadState(statePath); err == nil {
		m.timer = state
	}
	return m
}

// Init implements tea.Model
func (m TimerModel) Init() tea.Cmd {
	if m.timer.Phase == timer.PhaseRunning {
		return tick()
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// SetSize updates the view dimensions
func (m *TimerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode reports whether the view captures all keys; the timer
// view never does.
func (m TimerModel) IsInputMode() bool {
	return false
}

// Update implements tea.Model
func (m TimerModel) Update(msg tea.Msg) (TimerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.timer.Phase == timer.PhaseRunning {
			return m, tick()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m TimerModel) handleKey(msg tea.KeyMsg) (TimerModel, tea.Cmd) {
	projects := m.tracker.Catalog().Projects()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.timer.Phase == timer.PhaseIdle && m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.timer.Phase == timer.PhaseIdle && m.cursor < len(projects)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Start), key.Matches(msg, m.keys.Select):
		if m.timer.Phase != timer.PhaseIdle {
			return m, nil
		}
		if len(projects) == 0 {
			m.err = fmt.Errorf("no projects available")
			return m, nil
		}
		p := projects[m.cursor]
		m.err = m.timer.Start(p.ID, p.Name, time.Now())
		if m.err == nil {
			m.status = ""
			m.err = timer.SaveState(m.statePath, m.timer)
			return m, tick()
		}

	case key.Matches(msg, m.keys.Pause):
		m.err = m.timer.Pause(time.Now())
		if m.err == nil {
			m.err = timer.SaveState(m.statePath, m.timer)
		}

	case key.Matches(msg, m.keys.Resume):
		m.err = m.timer.Resume(time.Now())
		if m.err == nil {
			m.err = timer.SaveState(m.statePath, m.timer)
			return m, tick()
		}

	case key.Matches(msg, m.keys.Stop):
		return m.stop()
	}
	return m, nil
}

// stop ends the session and records the result as an entry. The cap
// and overlap rules apply to timer entries like any other, so a full
// day still rejects the stop.
func (m TimerModel) stop() (TimerModel, tea.Cmd) {
	projectID := m.timer.ProjectID
	now := time.Now()
	prev := m.timer
	mins, err := m.timer.Stop(now)
	if err != nil {
		m.err = err
		return m, nil
	}

	duration := float64(mins)
	created, err := m.tracker.Create(tracker.CreateInput{
		ProjectID:       projectID,
		Date:            entry.FormatDate(now),
		DurationMinutes: &duration,
	})
	if err != nil {
		// Keep the timer and its state file so the session is not lost.
		m.timer = prev
		m.err = err
		return m, nil
	}
	m.err = nil
	m.status = fmt.Sprintf("Recorded %s on %s", entry.FormatMinutes(created.DurationMinutes), created.ProjectName)
	if clearErr := timer.ClearState(m.statePath); clearErr != nil {
		m.err = clearErr
	}
	return m, nil
}

// View implements tea.Model
func (m TimerModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Timer"))
	b.WriteString("\n\n")

	switch m.timer.Phase {
	case timer.PhaseRunning:
		b.WriteString(m.styles.TimerRunning.Render("● Running"))
		b.WriteString("  " + m.timer.ProjectName)
		b.WriteString("\n\n")
		b.WriteString(m.styles.TimerElapsed.Render(formatElapsed(m.timer.Elapsed(time.Now()))))
		b.WriteString("\n")
	case timer.PhasePaused:
		b.WriteString(m.styles.TimerPaused.Render("‖ Paused"))
		b.WriteString("  " + m.timer.ProjectName)
		b.WriteString("\n\n")
		b.WriteString(m.styles.TimerElapsed.Render(formatElapsed(m.timer.Elapsed(time.Now()))))
		b.WriteString("\n")
	default:
		b.WriteString(m.styles.TimerIdle.Render("No timer running"))
		b.WriteString("\n\n")
		projects := m.tracker.Catalog().Projects()
		if len(projects) == 0 {
			b.WriteString(m.styles.Muted.Render("No projects available."))
			b.WriteString("\n")
		}
		for i, p := range projects {
			line := "  " + p.Name
			if p.Client != "" {
				line += m.styles.Muted.Render(" (" + p.Client + ")")
			}
			if i == m.cursor {
				line = m.styles.EntrySelected.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	return b.String()
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	min := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, min, sec)
}
