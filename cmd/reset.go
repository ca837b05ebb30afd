package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYesFlag bool

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset <project-id>",
	Short: "Delete all entries for a project",
	Long: `Delete every entry recorded against a project, across all dates.
Entries for other projects are untouched.

A confirmation prompt will be shown unless --yes is specified.

Example:
  stint reset 1
  stint reset 1 --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resetProject(args[0])
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolVarP(&resetYesFlag, "yes", "y", false, "skip confirmation prompt")
}

func resetProject(idStr string) {
	var projectID int
	if _, err := fmt.Sscanf(idStr, "%d", &projectID); err != nil || projectID <= 0 {
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
	sess.tracker.SelectProject(projectID)

	name := sess.tracker.Catalog().Name(projectID, "")
	if !resetYesFlag {
		prompt := fmt.Sprintf("Delete ALL entries for %s? [y/N]: ", name)
		if !promptConfirmation(prompt) {
			_, _ = fmt.Fprintln(deps.Stdout, "Reset cancelled")
			return
		}
	}

	count, err := sess.tracker.ResetProject()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to reset project: %v\n", err)
		deps.Exit(1)
		return
	}

	if count == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries for %s\n", name)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Deleted %d %s for %s\n", count, pluralize("entry", count), name)
}

// pluralize returns the singular or plural form of a word
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if word == "entry" {
		return "entries"
	}
	return word + "s"
}
