package llm

import (
	"strings"
	"testing"
)

func TestBuildExtractionPrompt(t *testing.T) {
	schema := ExtractionSchema{
		Name:        "Test",
		Description: "Extract test data.",
		Fields: []SchemaField{
			{Name: "keyword", Type: "\"string\"", Description: "the keyword", Required: true},
			{Name: "weight", Type: "number", Description: "the weight"},
		},
	}

	prompt := BuildExtractionPrompt(schema, "input body")

	for _, want := range []string{
		"Extract test data.",
		"\"keyword\"",
		"\"weight\"",
		"(required)",
		"JSON array",
		"input body",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestKeywordWeightsSchema(t *testing.T) {
	schema := KeywordWeightsSchema()

	if schema.Name != "KeywordWeights" {
		t.Errorf("Name = %q, want KeywordWeights", schema.Name)
	}
	if len(schema.Fields) != 2 {
		t.Fatalf("Fields count = %d, want 2", len(schema.Fields))
	}
	if !schema.Fields[0].Required {
		t.Error("keyword field should be required")
	}
}
