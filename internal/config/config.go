// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Profile      string `json:"profile,omitempty"`       // Path to candidate profile JSON
	Job          string `json:"job,omitempty"`           // Path to job posting JSON
	SynonymsPath string `json:"synonyms_path,omitempty"` // Path to the skill synonyms file

	// Behavior
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key for LLM keyword extraction
	FuzzyThreshold int    `json:"fuzzy_threshold,omitempty"` // Minimum similarity ratio for fuzzy skill matches (0-100)
	Parallelism    int    `json:"parallelism,omitempty"`     // Concurrent workers for bulk matching
	SessionTTLMins int    `json:"session_ttl_mins,omitempty"`
	Verbose        bool   `json:"verbose,omitempty"` // Print detailed debug information
	DatabaseURL    string `json:"database_url,omitempty"`
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be between 0 and 100")
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("config error: 'parallelism' must be non-negative")
	}
	if c.SessionTTLMins < 0 {
		return fmt.Errorf("config error: 'session_ttl_mins' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.SynonymsPath != "" {
		if _, err := os.Stat(c.SynonymsPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: synonyms file not found: %s", c.SynonymsPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.SynonymsPath == "" {
		result.SynonymsPath = defaults.SynonymsPath
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.FuzzyThreshold == 0 {
		if defaults.FuzzyThreshold > 0 {
			result.FuzzyThreshold = defaults.FuzzyThreshold
		} else {
			result.FuzzyThreshold = matching.DefaultFuzzyThreshold
		}
	}
	if result.Parallelism == 0 {
		if defaults.Parallelism > 0 {
			result.Parallelism = defaults.Parallelism
		} else {
			result.Parallelism = scoring.DefaultBulkParallelism
		}
	}
	if result.SessionTTLMins == 0 {
		result.SessionTTLMins = defaults.SessionTTLMins
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
