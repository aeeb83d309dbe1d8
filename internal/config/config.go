// Package config handles the optional YAML configuration for Ulko.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the run configuration.
type Config struct {
	// Region used for credential resolution and region discovery.
	Region string `yaml:"region"`

	// Regions overrides enabled-region discovery when non-empty.
	Regions []string `yaml:"regions,omitempty"`

	// OutputDir is where the report artifact is written.
	OutputDir string `yaml:"output_dir"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Region:    "us-east-1",
		OutputDir: ".",
		LogLevel:  "info",
	}
}

// Load reads configuration from file, filling unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate ensures config has usable values.
func (c *Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	return nil
}
