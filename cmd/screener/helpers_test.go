package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/config"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMergedConfig_FlagsWinOverFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	path := writeTestConfig(t, `{
		"job_url": "https://jobs.example.com/123",
		"required_skills": ["Python"],
		"fuzzy_threshold": 90
	}`)

	cfg, err := mergedConfig(path, config.Config{
		RequiredSkills: []string{"Go", "PostgreSQL"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "PostgreSQL"}, cfg.RequiredSkills)
	assert.Equal(t, "https://jobs.example.com/123", cfg.JobURL)
	assert.Equal(t, 90, cfg.FuzzyThreshold)
}

func TestMergedConfig_NoFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := mergedConfig("", config.Config{JobURL: "https://jobs.example.com/123"})
	require.NoError(t, err)
	assert.Equal(t, "https://jobs.example.com/123", cfg.JobURL)
}

func TestMergedConfig_EnvFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg, err := mergedConfig("", config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
}

func TestMergedConfig_FlagAPIKeyWinsOverEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "")

	cfg, err := mergedConfig("", config.Config{APIKey: "flag-key"})
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.APIKey)
}

func TestMergedConfig_ValidationFailure(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	_, err := mergedConfig("", config.Config{FuzzyThreshold: 150})
	assert.Error(t, err)
}

func TestMergedConfig_MissingConfigFile(t *testing.T) {
	_, err := mergedConfig("/nonexistent/config.json", config.Config{})
	assert.Error(t, err)
}

func TestNewExtractor_ThresholdOverride(t *testing.T) {
	ext := newExtractor(92)
	assert.Equal(t, 92, ext.FuzzyThreshold)

	ext = newExtractor(0)
	assert.Equal(t, 85, ext.FuzzyThreshold)
}

func TestWriteJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeJSON(path, map[string]int{"answer": 42}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer": 42}`, string(data))
}
