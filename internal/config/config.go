// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume    string `json:"resume,omitempty"`     // Path to a single resume file
	ResumeDir string `json:"resume_dir,omitempty"` // Directory of resume files for batch matching
	Job       string `json:"job,omitempty"`        // Path to job description text file
	JobURL    string `json:"job_url,omitempty"`    // URL to fetch job posting from

	// Matching
	RequiredSkills []string           `json:"required_skills,omitempty"` // Explicit required skills, overrides detection
	Weights        map[string]float64 `json:"weights,omitempty"`         // Factor weights for overall fit scoring
	FuzzyThreshold int                `json:"fuzzy_threshold,omitempty"` // Fuzzy skill match acceptance score (1-100)

	// Behavior
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key for semantic similarity
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}
	if c.Resume != "" && c.ResumeDir != "" {
		return fmt.Errorf("config error: 'resume' and 'resume_dir' are mutually exclusive")
	}

	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be between 0 and 100")
	}
	for factor, weight := range c.Weights {
		if weight < 0 {
			return fmt.Errorf("config error: weight for %q must be non-negative", factor)
		}
	}

	for _, path := range []string{c.Resume, c.Job} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.ResumeDir == "" {
		result.ResumeDir = defaults.ResumeDir
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if len(result.RequiredSkills) == 0 {
		result.RequiredSkills = defaults.RequiredSkills
	}
	if len(result.Weights) == 0 {
		result.Weights = defaults.Weights
	}
	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
	}

	return result
}
