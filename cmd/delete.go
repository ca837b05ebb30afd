package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stint-sh/stint/internal/entry"
)

var deleteYesFlag bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a time entry",
	Long: `Delete a time entry by its id.
A confirmation prompt will be shown unless --yes is specified.

Example:
  stint delete 3f1c...
  stint delete 3f1c... --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteEntry(args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteYesFlag, "yes", "y", false, "skip confirmation prompt")
}

func deleteEntry(id string) {
	sess, err := newSession()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	e, err := sess.tracker.Get(id)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Entry to delete:")
	_, _ = fmt.Fprintf(deps.Stdout, "  %s  %s (%s)\n",
		e.Date, e.ProjectName, entry.FormatMinutes(e.DurationMinutes))

	if !deleteYesFlag {
		if !promptConfirmation("Delete this entry? [y/N]: ") {
			_, _ = fmt.Fprintln(deps.Stdout, "Deletion cancelled")
			return
		}
	}

	if err := sess.tracker.Delete(id); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to delete entry: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Deleted: %s on %s (%s)\n",
		entry.FormatMinutes(e.DurationMinutes), e.ProjectName, e.Date)
}

// promptConfirmation asks the user to confirm an action.
// Returns true if the user answers 'y' or 'Y', false otherwise.
func promptConfirmation(prompt string) bool {
	_, _ = fmt.Fprint(deps.Stdout, prompt)

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
