package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extractor"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/taxonomy"
)

// mergedConfig loads the optional config file and applies flag values on
// top. Flag values win over the file.
func mergedConfig(configPath string, flags config.Config) (config.Config, error) {
	merged := flags
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		merged = flags.MergeWithDefaults(*fileCfg)
	}
	if merged.APIKey == "" {
		merged.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if merged.DatabaseURL == "" {
		merged.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// newExtractor builds the default extractor, optionally overriding the
// fuzzy match threshold.
func newExtractor(fuzzyThreshold int) *extractor.Extractor {
	ext := extractor.New(taxonomy.Default(), extractor.ProseTokenizer{})
	if fuzzyThreshold > 0 {
		ext.FuzzyThreshold = fuzzyThreshold
	}
	return ext
}

// writeJSON marshals v with indentation to outPath, or stdout when outPath
// is empty.
func writeJSON(outPath string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if outPath == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// validateAgainstSchema checks v against a bundled JSON schema. Validation
// failures are returned; a missing or unloadable schema only warns.
func validateAgainstSchema(schemaFile string, v any) error {
	schemaPath := schemas.ResolveSchemaPath("schemas/" + schemaFile)
	if schemaPath == "" {
		return nil
	}

	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := schemas.ValidateJSONContent(schemaPath, string(jsonBytes)); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("output does not validate against schema: %w", err)
		} else if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}
	return nil
}
