package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stint-sh/stint/internal/period"
	"github.com/stint-sh/stint/internal/view"
)

var (
	historyProject int
	historyBy      string
	historyMonth   bool
	historyOffset  int
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show grouped entry history for a period",
	Long: `Show the entry history for a week or month.

Grouping:
  --by day       One bucket per calendar day, scoped to --project
  --by project   One bucket per project across all projects

Navigation:
  --month        Month period instead of week
  --offset -1    Previous period, --offset 1 next, 0 is current

Examples:
  stint history --project 1
  stint history --by project --month --offset -1`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showHistory()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyProject, "project", "p", 0, "project id (required for --by day)")
	historyCmd.Flags().StringVar(&historyBy, "by", "day", "grouping: day or project")
	historyCmd.Flags().BoolVar(&historyMonth, "month", false, "use month periods instead of weeks")
	historyCmd.Flags().IntVar(&historyOffset, "offset", 0, "period offset relative to now (negative is past)")
}

func showHistory() {
	grouping := view.GroupByDay
	switch historyBy {
	case "day":
	case "project":
		grouping = view.GroupByProject
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid grouping '%s'\n", historyBy)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use --by day or --by project")
		deps.Exit(1)
		return
	}

	sess, err := newSession()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	nav := sess.tracker.Navigator()
	if historyMonth {
		nav.SetMode(period.ModeMonth)
	}
	for i := 0; i < historyOffset; i++ {
		nav.Next()
	}
	for i := 0; i > historyOffset; i-- {
		nav.Previous()
	}

	switch {
	case historyProject != 0:
		sess.tracker.SelectProject(historyProject)
	case grouping == view.GroupByProject:
		sess.tracker.SelectProject(-1)
	}

	m := sess.tracker.View(grouping)
	if m.NoProject {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No project selected")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Pass --project <id>, or use --by project for a cross-project view")
		deps.Exit(1)
		return
	}
	renderHistory(m)
}
