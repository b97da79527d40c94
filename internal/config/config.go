// Package config loads the server configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jlhu/perdiem/internal/i18n"
	"github.com/jlhu/perdiem/internal/theme"
)

// Config holds the server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// Database is the path to the SQLite database file.
	Database string `yaml:"database"`

	// Log is the minimum log level: debug, info, warn or error.
	Log string `yaml:"log"`

	// Defaults seed the language and theme settings of a fresh database.
	Defaults Defaults `yaml:"defaults"`
}

// Defaults are the preferences used until the user picks their own.
type Defaults struct {
	Language string `yaml:"language"`
	Theme    string `yaml:"theme"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:     ":8080",
		Database: "perdiem.sqlite3",
		Log:      "info",
		Defaults: Defaults{
			Language: i18n.Default,
			Theme:    theme.Auto,
		},
	}
}

// Load reads and validates the YAML configuration at path. Fields left
// out of the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise surface as confusing
// runtime behavior.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.Database == "" {
		return fmt.Errorf("database path must not be empty")
	}
	switch c.Log {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log)
	}
	if !i18n.Supported(c.Defaults.Language) {
		return fmt.Errorf("unsupported default language %q", c.Defaults.Language)
	}
	if !theme.Known(c.Defaults.Theme) {
		return fmt.Errorf("unknown default theme %q", c.Defaults.Theme)
	}
	return nil
}
