package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/spf13/cobra"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Convert a raw job posting into structured job JSON",
	Long:  "Reads a job posting from an HTML or plain text file, extracts the posting body, and splits it into the structured job shape. With an API key, an LLM structures the posting; otherwise a rule-based section splitter is used.",
	RunE:  runIngestJob,
}

var (
	ingestJobInput  string
	ingestJobOutput string
	ingestJobAPIKey string
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestJobInput, "in", "i", "", "Path to job posting file, .html/.htm or plain text (required)")
	ingestJobCmd.Flags().StringVarP(&ingestJobOutput, "out", "o", "", "Path to output job JSON file (required)")
	ingestJobCmd.Flags().StringVar(&ingestJobAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")

	if err := ingestJobCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := ingestJobCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	text, err := ingestion.ReadPostingFile(ingestJobInput)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("posting file %s contains no text", ingestJobInput)
	}

	apiKey := ingestJobAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	job := ingestion.ParseJob(text)
	if apiKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: LLM client unavailable (%v); using rule-based extraction\n", err)
		} else {
			defer func() { _ = client.Close() }()
			extracted, err := ingestion.ExtractWithLLM(ctx, client, text)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: LLM extraction failed (%v); using rule-based extraction\n", err)
			} else {
				job = extracted
			}
		}
	}

	if err := writeJSONOutput(job, ingestJobOutput, "job.schema.json"); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ingested job posting to %s\n", ingestJobOutput)

	return nil
}
