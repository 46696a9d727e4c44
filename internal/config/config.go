// Package config loads display and logging defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shree1767/SRM-GPA-Calculator/internal/logging"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds user defaults. Entered rows are never stored here.
type Config struct {
	Theme    string `yaml:"theme"`
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings: light theme, no log file.
func Default() *Config {
	return &Config{Theme: ThemeLight, LogLevel: "info"}
}

// DefaultPath returns the default config location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".sgpa.yaml"), nil
}

// Load reads the file at path over the defaults. A missing file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return Parse(data)
}

// LoadDefault reads the file at DefaultPath, falling back to Default when it does not exist.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config.Parse: %w", err)
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if cfg.Theme == "" {
		cfg.Theme = ThemeLight
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("config: invalid theme %q (want light|dark)", c.Theme)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Dark reports whether the board should start in the dark theme.
func (c *Config) Dark() bool { return c.Theme == ThemeDark }
