package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stint-sh/stint/internal/timer"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the timer status",
	Long:  `Show whether a timer is running, for which project, and the elapsed time so far.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showTimerStatus()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func showTimerStatus() {
	dataDir, err := resolveDataDir()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	t, err := timer.LoadState(timer.StatePath(dataDir))
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read timer state: %v\n", err)
		deps.Exit(1)
		return
	}

	switch t.Phase {
	case timer.PhaseRunning:
		_, _ = fmt.Fprintf(deps.Stdout, "Running: %s (%s elapsed)\n",
			t.ProjectName, formatElapsed(t.Elapsed(time.Now())))
	case timer.PhasePaused:
		_, _ = fmt.Fprintf(deps.Stdout, "Paused: %s (%s elapsed)\n",
			t.ProjectName, formatElapsed(t.Elapsed(time.Now())))
	default:
		_, _ = fmt.Fprintln(deps.Stdout, "No timer running")
	}
}

// formatElapsed renders a duration as hh:mm:ss
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
