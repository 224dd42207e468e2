// Package config loads fossil configuration from .fossilrc files.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	scanerrors "github.com/JRedrupp/fossil/internal/errors"
)

// FileName is the configuration file fossil looks for.
const FileName = ".fossilrc"

// Config holds the scanner configuration, consumed read-only by the
// scan and history packages.
type Config struct {
	// Markers are the annotation tokens to search for.
	Markers []string `toml:"markers" mapstructure:"markers"`

	// IgnoredDirs are directory names excluded from traversal
	// (exact name match, not patterns).
	IgnoredDirs []string `toml:"ignored_dirs" mapstructure:"ignored_dirs"`

	// ContextLines is the context window captured before and after a
	// marker line. 0 disables context capture.
	ContextLines int `toml:"context_lines" mapstructure:"context_lines"`

	// Severity optionally maps marker tokens to severity labels.
	Severity map[string]string `toml:"severity,omitempty" mapstructure:"severity"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Markers: []string{"TODO", "FIXME", "HACK", "XXX", "NOTE"},
		IgnoredDirs: []string{
			".git", "node_modules", "target", "dist", "build",
			".venv", "venv", "vendor", ".next", "__pycache__",
			".pytest_cache", "coverage",
		},
		ContextLines: 2,
		Severity:     map[string]string{},
	}
}

// Load resolves configuration using the search order:
// explicit path (exclusive), <scanRoot>/.fossilrc, $HOME/.fossilrc,
// then built-in defaults.
func Load(explicitPath string, scanRoot string) (*Config, error) {
	if explicitPath != "" {
		cfg, err := loadFile(explicitPath)
		if err != nil {
			return nil, scanerrors.New(scanerrors.ConfigInvalid,
				"failed to load config from "+explicitPath, err)
		}
		return cfg, nil
	}

	if scanRoot != "" {
		local := filepath.Join(scanRoot, FileName)
		if _, err := os.Stat(local); err == nil {
			if cfg, err := loadFile(local); err == nil {
				return cfg, nil
			}
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(home, FileName)
		if _, err := os.Stat(global); err == nil {
			if cfg, err := loadFile(global); err == nil {
				return cfg, nil
			}
		}
	}

	return Default(), nil
}

// loadFile reads one TOML config file, layering it over the defaults.
func loadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	def := Default()
	v.SetDefault("markers", def.Markers)
	v.SetDefault("ignored_dirs", def.IgnoredDirs)
	v.SetDefault("context_lines", def.ContextLines)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.Severity == nil {
		cfg.Severity = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration as TOML, for `fossil config init`.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks invariants the scanner relies on.
func (c *Config) Validate() error {
	if len(c.Markers) == 0 {
		return scanerrors.New(scanerrors.ConfigInvalid,
			"markers must not be empty", nil)
	}
	for _, m := range c.Markers {
		if m == "" {
			return scanerrors.New(scanerrors.ConfigInvalid,
				"marker tokens must be non-empty", nil)
		}
	}
	if c.ContextLines < 0 {
		return scanerrors.New(scanerrors.ConfigInvalid,
			"context_lines must be >= 0", nil)
	}
	return nil
}
