package cmd

import (
	"context"
	"fmt"

	"github.com/stint-sh/stint/internal/config"
	"github.com/stint-sh/stint/internal/period"
	"github.com/stint-sh/stint/internal/project"
	"github.com/stint-sh/stint/internal/store"
	"github.com/stint-sh/stint/internal/tracker"
)

// session bundles everything a one-shot command needs.
type session struct {
	tracker *tracker.Tracker
	cfg     config.Config
	dataDir string
}

// newSession loads the config, opens the store, and fetches the
// project directory. A failed directory fetch is a warning, not a
// fatal error: entries keep their recorded project names.
func newSession() (*session, error) {
	cfg, err := deps.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir, err = deps.DataDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine data location: %w", err)
		}
	}

	s := store.New(dataDir)
	s.Warnings = deps.Stderr

	catalog := project.NewCatalog(directoryFromConfig(cfg))
	if err := catalog.Load(context.Background()); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: project names fall back to the ones recorded on each entry")
	}

	return &session{
		tracker: tracker.New(s, catalog, period.New(cfg.WeekStartDay)),
		cfg:     cfg,
		dataDir: dataDir,
	}, nil
}

// directoryFromConfig picks the project source: a remote directory
// service, a local JSON file, or the built-in list.
func directoryFromConfig(cfg config.Config) project.Directory {
	if cfg.DirectoryURL != "" {
		return project.NewHTTPDirectory(cfg.DirectoryURL)
	}
	if cfg.ProjectsFile != "" {
		return project.FileDirectory{Path: cfg.ProjectsFile}
	}
	return project.BuiltIn()
}
