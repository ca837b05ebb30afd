// Package tui provides the Terminal User Interface for the stint application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stint-sh/stint/internal/tracker"
	"github.com/stint-sh/stint/internal/tui/ui"
	"github.com/stint-sh/stint/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabHistory Tab = iota
	TabTimer
)

var tabNames = []string{"History", "Timer"}

// Model is the root TUI model
type Model struct {
	tracker *tracker.Tracker

	// UI state
	activeTab Tab
	width     int
	height    int

	// View models
	historyView views.HistoryModel
	timerView   views.TimerModel

	styles ui.Styles
	keys   ui.KeyMap
}

// New creates a new TUI model
func New(t *tracker.Tracker, timerStatePath string) Model {
	styles := ui.DefaultStyles()
	keys := ui.DefaultKeyMap()

	return Model{
		tracker:     t,
		activeTab:   TabHistory,
		styles:      styles,
		keys:        keys,
		historyView: views.NewHistoryModel(t, styles, keys),
		timerView:   views.NewTimerModel(t, timerStatePath, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.historyView.Init(),
		m.timerView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		confirming := m.isModalInputMode()

		switch {
		case key.Matches(msg, m.keys.Quit) && !confirming:
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab) && !confirming:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !confirming:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !confirming:
			m.activeTab = TabHistory
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !confirming:
			m.activeTab = TabTimer
			return m, m.initCurrentView()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // Account for tabs and status bar
		m.historyView.SetSize(m.width, contentHeight)
		m.timerView.SetSize(m.width, contentHeight)
		return m, nil
	}

	// Update the active view; the timer keeps ticking in the background
	switch m.activeTab {
	case TabHistory:
		m.historyView, cmd = m.historyView.Update(msg)
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			m.timerView, _ = m.timerView.Update(msg)
		}
	case TabTimer:
		m.timerView, cmd = m.timerView.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabHistory:
		b.WriteString(m.historyView.View())
	case TabTimer:
		b.WriteString(m.timerView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	switch m.activeTab {
	case TabHistory:
		parts = append(parts, m.renderKeyHelp("←/→", "period"))
		parts = append(parts, m.renderKeyHelp("w/m", "week/month"))
		parts = append(parts, m.renderKeyHelp("0", "now"))
		parts = append(parts, m.renderKeyHelp("g", "grouping"))
		parts = append(parts, m.renderKeyHelp("d", "delete"))
	case TabTimer:
		parts = append(parts, m.renderKeyHelp("s", "start"))
		parts = append(parts, m.renderKeyHelp("p", "pause"))
		parts = append(parts, m.renderKeyHelp("r", "resume"))
		parts = append(parts, m.renderKeyHelp("x", "stop"))
	}

	parts = append(parts, m.renderKeyHelp("1-2", "views"))
	parts = append(parts, m.renderKeyHelp("q", "quit"))

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isModalInputMode checks if the current view is capturing all keys
func (m Model) isModalInputMode() bool {
	switch m.activeTab {
	case TabHistory:
		return m.historyView.IsInputMode()
	case TabTimer:
		return m.timerView.IsInputMode()
	}
	return false
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabHistory:
		return m.historyView.Init()
	case TabTimer:
		return m.timerView.Init()
	}
	return nil
}

// Run starts the TUI application
func Run(t *tracker.Tracker, timerStatePath string) error {
	model := New(t, timerStatePath)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
