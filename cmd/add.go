package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stint-sh/stint/internal/entry"
	"github.com/stint-sh/stint/internal/tracker"
)

var (
	addProject int
	addDate    string
	addStart   string
	addEnd     string
	addMinutes float64
	addNotes   string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a time entry",
	Long: `Record a time entry against a project.

Two duration styles are supported:
  --start 10:00 --end 11:00    Clock range; the duration is computed
  --minutes 45                 Direct duration, whole minutes only

The date defaults to today and cannot lie in the future. Clock ranges
may not overlap any existing entry on the same date, and a project can
hold at most 10 hours per day.

Examples:
  stint add --project 1 --start 10:00 --end 11:00
  stint add --project 2 --date 2026-01-20 --minutes 90 --notes "sprint review"`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		addEntry(cmd)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().IntVarP(&addProject, "project", "p", 0, "project id (required)")
	addCmd.Flags().StringVar(&addDate, "date", "", "entry date, YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addStart, "start", "", "start time, HH:MM")
	addCmd.Flags().StringVar(&addEnd, "end", "", "end time, HH:MM")
	addCmd.Flags().Float64Var(&addMinutes, "minutes", 0, "duration in minutes (instead of --start/--end)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
}

func addEntry(cmd *cobra.Command) {
	sess, err := newSession()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	date := addDate
	if date == "" {
		date = entry.FormatDate(time.Now())
	}

	in := tracker.CreateInput{
		ProjectID: addProject,
		Date:      date,
		StartTime: addStart,
		EndTime:   addEnd,
		Notes:     addNotes,
	}
	if cmd.Flags().Changed("minutes") {
		minutes := addMinutes
		in.DurationMinutes = &minutes
	}

	created, err := sess.tracker.Create(in)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'stint projects' to list project ids")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s on %s (%s)\n",
		entry.FormatMinutes(created.DurationMinutes), created.ProjectName, created.Date)
}
