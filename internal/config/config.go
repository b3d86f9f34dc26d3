// Package config loads the per-user TOML configuration file. Everything in
// it can also be set by a flag; flags win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds user preferences. Zero values mean unset; callers layer
// their own defaults on top.
type Config struct {
	Theme        string `toml:"theme"`
	Width        int    `toml:"width"`
	OSC8         string `toml:"osc8"`
	MaxCellLines int    `toml:"max_cell_lines"`
	LogFile      string `toml:"log_file"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return filepath.Join(dir, "mdv", "config.toml"), nil
}

// Load reads the config file at path. A missing file is not an error; the
// zero config is returned so defaults apply.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
