package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/git-branch-is/internal/styles"
)

// Environment variables read by Load.
const (
	EnvConfig  = "GIT_BRANCH_IS_CONFIG"
	EnvGitPath = "GIT_BRANCH_IS_GIT_PATH"
)

// Config holds defaults for git-branch-is flags.
// Command-line flags always win over these values.
type Config struct {
	GitPath    string   `toml:"git_path"`
	GitArgs    []string `toml:"git_args"`
	IgnoreCase bool     `toml:"ignore_case"`
	Quiet      bool     `toml:"quiet"`
	Verbose    bool     `toml:"verbose"`
	Suggest    bool     `toml:"suggest"`
	Color      string   `toml:"color"` // "auto", "always" or "never"
	Theme      string   `toml:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Color: styles.ColorAuto,
	}
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the config file location.
// GIT_BRANCH_IS_CONFIG wins over ~/.config/git-branch-is/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return expandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "git-branch-is", "config.toml"), nil
}

// Load reads the config file from Path and applies environment overrides.
// Returns Default() if the file doesn't exist (no error).
// Returns Default() and an error if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return withEnv(Default()), nil
	}
	cfg, err := LoadFile(path)
	return withEnv(cfg), err
}

// LoadFile reads config from path without environment overrides.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	// Expand ~ in git_path (shell doesn't expand in config files)
	if cfg.GitPath != "" {
		expanded, err := expandPath(cfg.GitPath)
		if err != nil {
			return Default(), fmt.Errorf("expand git_path: %w", err)
		}
		cfg.GitPath = expanded
	}

	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if c.Color != "" && !styles.ValidColorMode(c.Color) {
		return fmt.Errorf("invalid color %q: must be \"auto\", \"always\" or \"never\"", c.Color)
	}
	if c.Theme != "" && !styles.ValidTheme(c.Theme) {
		return fmt.Errorf("invalid theme %q: must be one of %s", c.Theme, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func withEnv(cfg Config) Config {
	if p := os.Getenv(EnvGitPath); p != "" {
		cfg.GitPath = p
	}
	return cfg
}
