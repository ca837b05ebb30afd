package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stint-sh/stint/internal/timer"
)

// pauseCmd represents the pause command
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the running timer",
	Long:  `Pause the running timer. Paused time is not counted; resume with 'stint resume'.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		transitionTimer("pause")
	},
}

// resumeCmd represents the resume command
var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume the paused timer",
	Long:  `Resume a paused timer. Time counts again from the moment of resumption.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		transitionTimer("resume")
	},
}

func init() {
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
}

func transitionTimer(action string) {
	dataDir, err := resolveDataDir()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	statePath := timer.StatePath(dataDir)
	t, err := timer.LoadState(statePath)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read timer state: %v\n", err)
		deps.Exit(1)
		return
	}

	now := time.Now()
	if action == "pause" {
		err = t.Pause(now)
	} else {
		err = t.Resume(now)
	}
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	if err := timer.SaveState(statePath, t); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to save timer state: %v\n", err)
		deps.Exit(1)
		return
	}

	if action == "pause" {
		_, _ = fmt.Fprintf(deps.Stdout, "Timer paused for %s\n", t.ProjectName)
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Timer resumed for %s\n", t.ProjectName)
	}
}

// resolveDataDir finds the data directory without opening a session;
// timer transitions never touch the entry collection.
func resolveDataDir() (string, error) {
	cfg, err := deps.Config()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DataDir != "" {
		return cfg.DataDir, nil
	}
	return deps.DataDir()
}
