package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stint-sh/stint/internal/entry"
	"github.com/stint-sh/stint/internal/tracker"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing entry",
	Long: `Edit the date, clock range, or notes of an existing entry.

The entry keeps its project; record a new entry instead if it was
booked against the wrong one. The edited entry is re-checked against
the overlap and daily-limit rules, excluding its own previous state.

Examples:
  stint edit 3f1c... --start 09:30 --end 10:30
  stint edit 3f1c... --date 2026-01-19 --notes "moved to Monday"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		editEntry(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().String("date", "", "new date, YYYY-MM-DD")
	editCmd.Flags().String("start", "", "new start time, HH:MM")
	editCmd.Flags().String("end", "", "new end time, HH:MM")
	editCmd.Flags().String("notes", "", "new notes")
}

func editEntry(cmd *cobra.Command, id string) {
	var in tracker.EditInput
	changed := false
	for flag, target := range map[string]**string{
		"date":  &in.Date,
		"start": &in.StartTime,
		"end":   &in.EndTime,
		"notes": &in.Notes,
	} {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			*target = &v
			changed = true
		}
	}
	if !changed {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Nothing to change")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Pass at least one of --date, --start, --end, --notes")
		deps.Exit(1)
		return
	}

	sess, err := newSession()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	updated, err := sess.tracker.Edit(id, in)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Updated: %s on %s (%s)\n",
		entry.FormatMinutes(updated.DurationMinutes), updated.ProjectName, updated.Date)
}
