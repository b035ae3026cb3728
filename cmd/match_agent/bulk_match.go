package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/spf13/cobra"
)

var bulkMatchCmd = &cobra.Command{
	Use:   "bulk-match",
	Short: "Score one profile against many job postings",
	Long:  "Scores a candidate profile against every job in a JSON array file concurrently and writes the results in input order.",
	RunE:  runBulkMatch,
}

var (
	bulkMatchProfile     string
	bulkMatchJobs        string
	bulkMatchSynonyms    string
	bulkMatchOutput      string
	bulkMatchParallelism int
)

func init() {
	bulkMatchCmd.Flags().StringVarP(&bulkMatchProfile, "profile", "p", "", "Path to candidate profile JSON file (required)")
	bulkMatchCmd.Flags().StringVarP(&bulkMatchJobs, "jobs", "j", "", "Path to JSON file containing an array of job postings (required)")
	bulkMatchCmd.Flags().StringVarP(&bulkMatchSynonyms, "synonyms", "s", "", "Path to skill synonyms JSON file (default config/skill_synonyms.json)")
	bulkMatchCmd.Flags().StringVarP(&bulkMatchOutput, "out", "o", "", "Path to output JSON file (required)")
	bulkMatchCmd.Flags().IntVar(&bulkMatchParallelism, "parallelism", 0, "Concurrent scoring workers (default 8)")

	if err := bulkMatchCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := bulkMatchCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}
	if err := bulkMatchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(bulkMatchCmd)
}

func runBulkMatch(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(bulkMatchProfile)
	if err != nil {
		return err
	}

	jobsContent, err := os.ReadFile(bulkMatchJobs)
	if err != nil {
		return fmt.Errorf("failed to read jobs file %s: %w", bulkMatchJobs, err)
	}
	var jobs []*types.Job
	if err := json.Unmarshal(jobsContent, &jobs); err != nil {
		return fmt.Errorf("failed to unmarshal jobs JSON: %w", err)
	}
	for i, job := range jobs {
		if err := job.Validate(); err != nil {
			return fmt.Errorf("invalid job at index %d: %w", i, err)
		}
	}

	matcher := matching.NewMatcher(loadRegistry(bulkMatchSynonyms))
	scorer := scoring.NewScorer(matcher, keywords.NewExtractor())

	results, err := scorer.BulkMatch(context.Background(), profile, jobs, bulkMatchParallelism)
	if err != nil {
		return fmt.Errorf("bulk match failed: %w", err)
	}

	if err := writeJSONOutput(results, bulkMatchOutput, ""); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully matched %d jobs to %s\n", len(results), bulkMatchOutput)

	return nil
}
