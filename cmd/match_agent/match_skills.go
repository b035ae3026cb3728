package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/spf13/cobra"
)

var matchSkillsCmd = &cobra.Command{
	Use:   "match-skills",
	Short: "Match a candidate's skills against a job's skill lists",
	Long:  "Matches the candidate's skills against the job's required and preferred skills using exact, synonym, fuzzy, and hierarchy rules, producing per-skill match records and the missing-skill lists.",
	RunE:  runMatchSkills,
}

var (
	matchSkillsProfile  string
	matchSkillsJob      string
	matchSkillsSynonyms string
	matchSkillsOutput   string
	matchSkillsVerbose  bool
)

// matchSkillsResult is the output document for the match-skills command.
type matchSkillsResult struct {
	Matched      []types.SkillMatch     `json:"matched"`
	Missing      matching.MissingSkills `json:"missing"`
	MatchPercent int                    `json:"match_percent"`
}

func init() {
	matchSkillsCmd.Flags().StringVarP(&matchSkillsProfile, "profile", "p", "", "Path to candidate profile JSON file (required)")
	matchSkillsCmd.Flags().StringVarP(&matchSkillsJob, "job", "j", "", "Path to job posting JSON file (required)")
	matchSkillsCmd.Flags().StringVarP(&matchSkillsSynonyms, "synonyms", "s", "", "Path to skill synonyms JSON file (default config/skill_synonyms.json)")
	matchSkillsCmd.Flags().StringVarP(&matchSkillsOutput, "out", "o", "", "Path to output JSON file (required)")
	matchSkillsCmd.Flags().BoolVarP(&matchSkillsVerbose, "verbose", "v", false, "Print matched and missing skills")

	if err := matchSkillsCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := matchSkillsCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := matchSkillsCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchSkillsCmd)
}

func runMatchSkills(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(matchSkillsProfile)
	if err != nil {
		return err
	}
	job, err := loadJob(matchSkillsJob)
	if err != nil {
		return err
	}

	matcher := matching.NewMatcher(loadRegistry(matchSkillsSynonyms))

	matched, _ := matcher.MatchSkills(profile.Skills, job.Requirements.RequiredSkills)
	missing := matcher.IdentifyMissingSkills(profile.Skills, job.Requirements.RequiredSkills, job.Requirements.PreferredSkills)
	percent := matcher.RequiredSkillsMatchPercent(profile.Skills, job.Requirements.RequiredSkills)

	result := matchSkillsResult{
		Matched:      matched,
		Missing:      missing,
		MatchPercent: percent,
	}

	if err := writeJSONOutput(result, matchSkillsOutput, ""); err != nil {
		return err
	}

	if matchSkillsVerbose {
		observability.NewPrinter(os.Stdout).PrintSkillMatches(matched, missing.Required)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Matched %d/%d required skills (%d%%), results written to %s\n",
		len(matched), len(job.Requirements.RequiredSkills), percent, matchSkillsOutput)

	return nil
}
