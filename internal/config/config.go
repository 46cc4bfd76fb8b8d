// Package config loads rspeclint configuration.
package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/speclab/rspeclint/internal/model"
)

// DefaultFile is the config file name looked up in the lint root.
const DefaultFile = ".rspeclint.yml"

// Config holds the linter settings.
type Config struct {
	// EnforcedStyle selects symbolic or numeric status notation.
	EnforcedStyle model.Style `yaml:"enforced_style"`

	// Exclude lists doublestar glob patterns of spec paths to skip,
	// relative to the lint root.
	Exclude []string `yaml:"exclude"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{EnforcedStyle: model.StyleSymbolic}
}

// Load reads a YAML config file. Missing keys keep their defaults. The read
// error is returned unwrapped so callers can test it with os.IsNotExist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}
