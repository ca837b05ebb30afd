package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stint-sh/stint/internal/entry"
	"github.com/stint-sh/stint/internal/view"
)

var rootCmd = &cobra.Command{
	Use:   "stint",
	Short: "A time tracking CLI application",
	Long: `stint tracks time entries against projects.

Usage:
  stint                                         Show this week's time by project
  stint add --project 1 --start 10:00 --end 11:00   Record a manual entry
  stint add --project 1 --minutes 45            Record a direct-duration entry
  stint history --project 1                     Browse a project's day-by-day history
  stint start 1 / stint stop                    Run a timer and record the result
  stint delete <id>                             Delete an entry (with confirmation)
  stint serve                                   Expose projects and entry submission over HTTP
  stint tui                                     Launch the interactive terminal UI

Dates use YYYY-MM-DD and clock times use HH:MM (24h).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showWeekSummary()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"stint version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// showWeekSummary prints the current week's totals across all projects
func showWeekSummary() {
	sess, err := newSession()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	// Cross-project grouping needs no selected project; any non-zero
	// id switches the model out of its no-project state.
	sess.tracker.SelectProject(-1)
	renderHistory(sess.tracker.View(view.GroupByProject))
}

// renderHistory writes a grouped history view as plain text
func renderHistory(m view.Model) {
	_, _ = fmt.Fprintln(deps.Stdout, m.PeriodLabel)
	_, _ = fmt.Fprintln(deps.Stdout)

	if m.NoProject {
		_, _ = fmt.Fprintln(deps.Stdout, "No project selected")
		return
	}
	if m.Empty {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries in this period")
		return
	}

	for _, g := range m.Groups {
		_, _ = fmt.Fprintf(deps.Stdout, "%s (%s)\n", g.Label, entry.FormatMinutes(g.TotalMinutes))
		for _, e := range g.Entries {
			clock := "           "
			if e.HasClockRange() {
				clock = fmt.Sprintf("%s-%s", e.StartTime, e.EndTime)
			}
			line := fmt.Sprintf("  %s  %-24s %8s", clock, e.ProjectName, entry.FormatMinutes(e.DurationMinutes))
			if e.Notes != "" {
				line += "  " + e.Notes
			}
			_, _ = fmt.Fprintln(deps.Stdout, line)
		}
	}
	_, _ = fmt.Fprintf(deps.Stdout, "\nTotal: %s\n", entry.FormatMinutes(m.TotalMinutes))
}
