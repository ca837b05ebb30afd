package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/stint-sh/stint/internal/timer"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start <project-id>",
	Short: "Start a timer for a project",
	Long: `Start a timer for a project. Only one timer runs at a time;
stop or pause it before starting another.

Example:
  stint start 1`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startTimer(args[0])
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func startTimer(idStr string) {
	projectID, err := strconv.Atoi(idStr)
	if err != nil || projectID <= 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid project id '%s'\n", idStr)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'stint projects' to list project ids")
		deps.Exit(1)
		return
	}

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

	name := sess.tracker.Catalog().Name(projectID, "")
	if err := t.Start(projectID, name, time.Now()); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Stop the running timer first with 'stint stop'")
		deps.Exit(1)
		return
	}
	if err := timer.SaveState(statePath, t); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to save timer state: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Timer started for %s\n", name)
}
