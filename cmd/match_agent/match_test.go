package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestProfile(t *testing.T, dir string) string {
	t.Helper()
	profile := types.Profile{
		Name:   "Test Candidate",
		Skills: []types.Skill{{Name: "Python", Proficiency: "Expert"}},
	}
	data, err := json.Marshal(profile)
	require.NoError(t, err)
	path := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func writeTestJob(t *testing.T, dir string) string {
	t.Helper()
	job := types.Job{
		Title: "Backend Engineer",
		Requirements: types.JobRequirement{
			RequiredSkills: []string{"python", "java"},
		},
	}
	data, err := json.Marshal(job)
	require.NoError(t, err)
	path := filepath.Join(dir, "job.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestMatchCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --out flag",
			args:        []string{"match", "--profile", "p.json", "--job", "j.json"},
			errorString: "required",
		},
		{
			name:        "Missing --profile",
			args:        []string{"match", "--out", "out.json", "--job", "j.json"},
			errorString: "--profile must be provided",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestMatchCommand_EndToEnd(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	profilePath := writeTestProfile(t, tmpDir)
	jobPath := writeTestJob(t, tmpDir)
	outPath := filepath.Join(tmpDir, "result.json")

	cmd := exec.Command(binaryPath, "match",
		"--profile", profilePath,
		"--job", jobPath,
		"--out", outPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", output)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result types.MatchResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)
	assert.Contains(t, result.MissingRequiredSkills, "java")
}
