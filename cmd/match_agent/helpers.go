package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// loadProfile reads and validates a candidate profile JSON file.
func loadProfile(path string) (*types.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var profile types.Profile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	return &profile, nil
}

// loadJob reads and validates a job posting JSON file.
func loadJob(path string) (*types.Job, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	var job types.Job
	if err := json.Unmarshal(content, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job %s: %w", path, err)
	}

	return &job, nil
}

// loadRegistry loads the synonym registry, warning on stderr if the file is
// missing or malformed. Matching proceeds with an empty registry either way.
func loadRegistry(path string) *matching.Registry {
	if path == "" {
		path = filepath.Join("config", "skill_synonyms.json")
	}

	registry, err := matching.LoadRegistry(path)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v; continuing with exact and fuzzy matching only\n", err)
	}
	return registry
}

// writeJSONOutput marshals v with indentation, writes it to outPath (creating
// parent directories), and validates it against the named schema when the
// schema file can be resolved. Validation failures warn, never fail.
func writeJSONOutput(v any, outPath, schemaName string) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}

	if schemaName != "" {
		schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaName))
		if schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, outPath); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
			}
		}
	}

	return nil
}
