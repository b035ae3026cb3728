package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate profile against a job posting",
	Long: `Calculates the full weighted match score for one profile against one job: skill matching, experience estimation, domain overlap, keyword coverage, achievement ranking, and improvement suggestions.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runMatch,
}

var (
	matchConfigPath  string
	matchProfile     string
	matchJob         string
	matchSynonyms    string
	matchOutput      string
	matchVerbose     bool
	matchDatabaseURL string
)

func init() {
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	matchCmd.Flags().StringVarP(&matchProfile, "profile", "p", "", "Path to candidate profile JSON file")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job posting JSON file")
	matchCmd.Flags().StringVarP(&matchSynonyms, "synonyms", "s", "", "Path to skill synonyms JSON file (default config/skill_synonyms.json)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output MatchResult JSON file (required)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed match information")
	matchCmd.Flags().StringVar(&matchDatabaseURL, "db-url", "", "PostgreSQL connection URL for result persistence (optional, defaults to DATABASE_URL env var)")

	if err := matchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Load config file if provided, then apply CLI overrides
	var cfg config.Config
	if matchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("profile") {
		cfg.Profile = matchProfile
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = matchJob
	}
	if cmd.Flags().Changed("synonyms") {
		cfg.SynonymsPath = matchSynonyms
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = matchVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = matchDatabaseURL
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	cfg = cfg.MergeWithDefaults(config.Config{})

	if cfg.Profile == "" {
		return fmt.Errorf("--profile must be provided (via flag or config)")
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job must be provided (via flag or config)")
	}

	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}
	job, err := loadJob(cfg.Job)
	if err != nil {
		return err
	}

	registry := loadRegistry(cfg.SynonymsPath)
	matcher := matching.NewMatcher(registry).WithFuzzyThreshold(cfg.FuzzyThreshold)
	scorer := scoring.NewScorer(matcher, keywords.NewExtractor())

	result := scorer.CalculateMatchScore(profile, job)

	if err := writeJSONOutput(result, matchOutput, "match_result.schema.json"); err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMatchResult(result)
		printer.PrintRankedAchievements(result.RankedAchievements)
		printer.PrintSuggestions(result.Suggestions)
	}

	// Persist when a database is configured; matching never depends on it.
	if cfg.DatabaseURL != "" {
		if err := persistMatch(ctx, cfg.DatabaseURL, result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to persist match result: %v\n", err)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Match score %d/100 written to %s\n", result.OverallScore, matchOutput)

	return nil
}

func persistMatch(ctx context.Context, databaseURL string, result *types.MatchResult) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	matchID, err := database.SaveMatchResult(ctx, result)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Saved match result as %s\n", matchID)
	return nil
}
