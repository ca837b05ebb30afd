package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// projectsCmd represents the projects command
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List available projects",
	Long: `List the projects available for time entries.

Projects come from the configured directory: a remote service
(directory_url), a local JSON file (projects_file), or the built-in
list when neither is configured.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listProjects()
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func listProjects() {
	sess, err := newSession()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	projects := sess.tracker.Catalog().Projects()
	if len(projects) == 0 {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Project directory is unavailable")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check directory_url or projects_file in your config, then retry")
		deps.Exit(1)
		return
	}

	for _, p := range projects {
		line := fmt.Sprintf("  [%d] %s", p.ID, p.Name)
		if p.Client != "" {
			line += fmt.Sprintf(" (%s)", p.Client)
		}
		_, _ = fmt.Fprintln(deps.Stdout, line)
	}
}
