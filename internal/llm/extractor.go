// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "KeywordWeights")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "number"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY a valid JSON array of objects matching this exact structure:\n[{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}]\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON array, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// KeywordWeightsSchema returns the extraction schema for weighted keywords.
// Used by the LLM-backed extraction strategy; the rule-based extractor covers
// the same fields when no LLM is available.
func KeywordWeightsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "KeywordWeights",
		Description: `You are an expert at analyzing job postings and professional text.
Extract the content keywords and technical terms that characterize the text, with a relevance weight for each.
Weight guidelines:
- 1.0: concrete technology, tool, or named product (Kubernetes, Go, PostgreSQL)
- 0.7: specific methodology or domain term (microservices, CI/CD, machine learning)
- 0.4: broad technical or role vocabulary (backend, infrastructure, pipeline)
- 0.2: generic professional vocabulary (team, project, delivery)`,
		Fields: []SchemaField{
			{
				Name:        "keyword",
				Type:        "\"string\"",
				Description: "The keyword or technical term, lowercased",
				Required:    true,
			},
			{
				Name:        "weight",
				Type:        "number",
				Description: "Relevance weight between 0.0 and 1.0",
				Required:    true,
			},
		},
	}
}
