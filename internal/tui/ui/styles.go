package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	ViewTitle   lipgloss.Style
	PeriodLabel lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// History list
	GroupHeader   lipgloss.Style
	EntrySelected lipgloss.Style
	EntryNormal   lipgloss.Style
	EntryTime     lipgloss.Style
	EntryDuration lipgloss.Style
	GroupTotal    lipgloss.Style
	GrandTotal    lipgloss.Style

	// Timer
	TimerRunning lipgloss.Style
	TimerPaused  lipgloss.Style
	TimerIdle    lipgloss.Style
	TimerElapsed lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	// Color palette
	primary := lipgloss.Color("99")     // Purple
	secondary := lipgloss.Color("39")   // Cyan
	muted := lipgloss.Color("240")      // Gray
	success := lipgloss.Color("82")     // Green
	warning := lipgloss.Color("214")    // Orange
	errorColor := lipgloss.Color("196") // Red

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		PeriodLabel: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		GroupHeader: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		EntrySelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
		EntryNormal:   lipgloss.NewStyle(),
		EntryTime:     lipgloss.NewStyle().Foreground(secondary),
		EntryDuration: lipgloss.NewStyle().Foreground(success),
		GroupTotal:    lipgloss.NewStyle().Foreground(muted),
		GrandTotal: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		TimerRunning: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		TimerPaused: lipgloss.NewStyle().
			Foreground(warning).
			Bold(true),
		TimerIdle: lipgloss.NewStyle().
			Foreground(muted),
		TimerElapsed: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),

		Error:   lipgloss.NewStyle().Foreground(errorColor),
		Warning: lipgloss.NewStyle().Foreground(warning),
		Success: lipgloss.NewStyle().Foreground(success),
		Muted:   lipgloss.NewStyle().Foreground(muted),
	}
}
