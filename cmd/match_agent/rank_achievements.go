package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/spf13/cobra"
)

var rankAchievementsCmd = &cobra.Command{
	Use:   "rank-achievements",
	Short: "Rank a candidate's achievements against a job posting",
	Long:  "Deterministically ranks all achievements from a candidate profile by relevance to a job posting, producing a list sorted by descending score with per-achievement reasons.",
	RunE:  runRankAchievements,
}

var (
	rankAchievementsProfile string
	rankAchievementsJob     string
	rankAchievementsOutput  string
	rankAchievementsVerbose bool
)

// rankedAchievementsResult is the output document for the rank-achievements command.
type rankedAchievementsResult struct {
	Ranked []types.RankedAchievement `json:"ranked"`
}

func init() {
	rankAchievementsCmd.Flags().StringVarP(&rankAchievementsProfile, "profile", "p", "", "Path to candidate profile JSON file (required)")
	rankAchievementsCmd.Flags().StringVarP(&rankAchievementsJob, "job", "j", "", "Path to job posting JSON file (required)")
	rankAchievementsCmd.Flags().StringVarP(&rankAchievementsOutput, "out", "o", "", "Path to output JSON file (required)")
	rankAchievementsCmd.Flags().BoolVarP(&rankAchievementsVerbose, "verbose", "v", false, "Print the top ranked achievements")

	if err := rankAchievementsCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := rankAchievementsCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := rankAchievementsCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(rankAchievementsCmd)
}

func runRankAchievements(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(rankAchievementsProfile)
	if err != nil {
		return err
	}
	job, err := loadJob(rankAchievementsJob)
	if err != nil {
		return err
	}

	ranker := ranking.NewRanker(keywords.NewExtractor())
	ranked := ranker.RankAchievements(profile.AllAchievements(), job)

	if err := writeJSONOutput(rankedAchievementsResult{Ranked: ranked}, rankAchievementsOutput, ""); err != nil {
		return err
	}

	if rankAchievementsVerbose {
		observability.NewPrinter(os.Stdout).PrintRankedAchievements(ranked)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d achievements to %s\n", len(ranked), rankAchievementsOutput)

	return nil
}
