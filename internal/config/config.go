// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags and environment variables.
type Config struct {
	DatabaseURL  string `json:"database_url,omitempty"`  // PostgreSQL connection URL
	Profile      string `json:"profile,omitempty"`       // Default weighting profile name
	ProfilesPath string `json:"profiles_path,omitempty"` // Path to custom weighting profiles YAML
	Verbose      bool   `json:"verbose,omitempty"`       // Print detailed breakdowns
	LogJSON      bool   `json:"log_json,omitempty"`      // Emit JSON-encoded logs
	Debug        bool   `json:"debug,omitempty"`         // Enable debug-level logging
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. The profile name
// itself is resolved later against the built-in and custom profile sets.
func (c *Config) Validate() error {
	if c.ProfilesPath != "" {
		if _, err := os.Stat(c.ProfilesPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: profiles file not found: %s", c.ProfilesPath)
		}
	}
	return nil
}
