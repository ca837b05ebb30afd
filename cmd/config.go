package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stint-sh/stint/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration in effect and where it was loaded from.

Settings (config.toml):
  week_start_day   "monday" (default) or "sunday"
  data_dir         Where entries and timer state live
  projects_file    Local JSON file with the project list
  directory_url    Remote project directory service
  listen_addr      Bind address for 'stint serve'
  static_dir       Static assets served at / by 'stint serve'`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func showConfig() {
	cfg, err := deps.Config()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	if path, err := config.GetConfigPath(); err == nil {
		_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n\n", path)
	}

	_, _ = fmt.Fprintf(deps.Stdout, "week_start_day = %q\n", cfg.WeekStartDay)
	_, _ = fmt.Fprintf(deps.Stdout, "data_dir = %q\n", cfg.DataDir)
	_, _ = fmt.Fprintf(deps.Stdout, "projects_file = %q\n", cfg.ProjectsFile)
	_, _ = fmt.Fprintf(deps.Stdout, "directory_url = %q\n", cfg.DirectoryURL)
	_, _ = fmt.Fprintf(deps.Stdout, "listen_addr = %q\n", cfg.ListenAddr)
	_, _ = fmt.Fprintf(deps.Stdout, "static_dir = %q\n", cfg.StaticDir)
}
