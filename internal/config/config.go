package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for config directory
	AppName = "stint"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// WeekStartDay defines which day starts the week (monday or sunday)
	WeekStartDay string `toml:"week_start_day"`
	// DataDir overrides where entries and timer state are stored
	DataDir string `toml:"data_dir"`
	// ProjectsFile points at a local JSON file holding the project list
	ProjectsFile string `toml:"projects_file"`
	// DirectoryURL points at a remote project directory service;
	// takes precedence over ProjectsFile when both are set
	DirectoryURL string `toml:"directory_url"`
	// ListenAddr is the bind address for the serve command
	ListenAddr string `toml:"listen_addr"`
	// StaticDir optionally serves a directory of static assets
	StaticDir string `toml:"static_dir"`
}

// DefaultConfig returns a Config with sensible defaults.
// - week_start_day: "monday" (ISO 8601 standard)
// - listen_addr: ":8420"
// - everything else empty, resolved at use
func DefaultConfig() Config {
	return Config{
		WeekStartDay: "monday",
		ListenAddr:   ":8420",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file at the standard path. A missing
// file is not an error; defaults are returned. A file that exists but
// cannot be parsed is an error, so a typo never silently reverts the
// user to defaults.
func LoadOrDefault() (Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

func (c *Config) normalize() error {
	c.WeekStartDay = strings.ToLower(strings.TrimSpace(c.WeekStartDay))
	switch c.WeekStartDay {
	case "":
		c.WeekStartDay = "monday"
	case "monday", "sunday":
	default:
		return fmt.Errorf("invalid week_start_day %q (must be monday or sunday)", c.WeekStartDay)
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8420"
	}
	return nil
}
