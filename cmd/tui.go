package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stint-sh/stint/internal/timer"
	"github.com/stint-sh/stint/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for stint.

Views available:
  - History: Pick a project, browse grouped entries, switch periods, delete entries
  - Timer: Pick a project, run a timer, record the result

Keyboard shortcuts:
  - Tab/Shift+Tab or 1-2: Switch views
  - ←/→: Previous/next period    w/m: Week/month    0: Current period
  - g: Toggle grouping
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes and runs the TUI application
func runTUI() {
	sess, err := newSession()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing session: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(sess.tracker, timer.StatePath(sess.dataDir)); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
