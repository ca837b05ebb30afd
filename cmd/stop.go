package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stint-sh/stint/internal/entry"
	"github.com/stint-sh/stint/internal/timer"
	"github.com/stint-sh/stint/internal/tracker"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the timer and record an entry",
	Long: `Stop the running (or paused) timer and record the elapsed time
as an entry dated today. The elapsed time is rounded to the nearest
minute, with a minimum of one minute.

The recorded entry passes through the same checks as a manual one, so
a project that already holds its daily limit rejects the stop and the
timer keeps running.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stopTimer()
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

func stopTimer() {
	sess, err := newSession()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	statePath := timer.StatePath(sess.dataDir)
	t, err := timer.LoadState(statePath)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read timer state: %v\n", err)
		deps.Exit(1)
		return
	}

	projectID := t.ProjectID
	now := time.Now()
	mins, err := t.Stop(now)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Start one with 'stint start <project-id>'")
		deps.Exit(1)
		return
	}

	duration := float64(mins)
	created, err := sess.tracker.Create(tracker.CreateInput{
		ProjectID:       projectID,
		Date:            entry.FormatDate(now),
		DurationMinutes: &duration,
	})
	if err != nil {
		// Keep the timer state so the session is not lost.
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: The timer is still running; free up the day and stop again")
		deps.Exit(1)
		return
	}

	if err := timer.ClearState(statePath); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: Failed to clear timer state: %v\n", err)
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Recorded %s on %s\n",
		entry.FormatMinutes(created.DurationMinutes), created.ProjectName)
}
