package llm

import (
	"testing"
)

func TestCleanJSONBlock_MarkdownCodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"keyword\": \"docker\"}\n```",
			expected: `{"keyword": "docker"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"keyword\": \"docker\"}\n```",
			expected: `{"keyword": "docker"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"keyword\": \"docker\"}\n```",
			expected: `{"keyword": "docker"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"keyword": "docker"}`,
			expected: `{"keyword": "docker"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestCleanJSONBlock_PreambleText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preamble before JSON object",
			input:    "As requested, here is the JSON:\n{\"keyword\": \"go\"}",
			expected: `{"keyword": "go"}`,
		},
		{
			name:     "preamble before JSON array",
			input:    "Here are the extracted keywords:\n\n[{\"keyword\": \"go\", \"weight\": 1.0}]",
			expected: `[{"keyword": "go", "weight": 1.0}]`,
		},
		{
			name:     "no preamble",
			input:    `[{"keyword": "go"}]`,
			expected: `[{"keyword": "go"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}
