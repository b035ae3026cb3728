// Package scoring aggregates skill matching, achievement ranking, experience
// estimation, and keyword coverage into one bounded match score.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Component weights for the total score. Empirically tuned; they sum to 1.0.
const (
	TechnicalWeight       = 0.40
	ExperienceWeight      = 0.25
	DomainWeight          = 0.20
	KeywordCoverageWeight = 0.15
)

// Suggestion thresholds: a component score below its threshold adds a hint.
const (
	lowTechnicalThreshold  = 60.0
	lowExperienceThreshold = 70.0
	lowDomainThreshold     = 60.0
	lowKeywordThreshold    = 60.0
)

const (
	maxSuggestions           = 5
	maxMissingInSuggestion   = 5
	maxPreferredInSuggestion = 3
)

// Scorer combines the skill matcher, keyword extractor, and achievement
// ranker. A Scorer holds no cross-request state; one instance may serve any
// number of concurrent calls.
type Scorer struct {
	matcher   *matching.Matcher
	extractor *keywords.Extractor
	ranker    *ranking.Ranker
}

// NewScorer creates a scorer from its injected collaborators.
func NewScorer(matcher *matching.Matcher, extractor *keywords.Extractor) *Scorer {
	return &Scorer{
		matcher:   matcher,
		extractor: extractor,
		ranker:    ranking.NewRanker(extractor),
	}
}

// CalculateMatchScore produces the aggregate match result for one profile
// against one job. Every malformed-but-well-typed input (missing dates, empty
// lists, empty text) has a defined default; the call itself never fails.
func (s *Scorer) CalculateMatchScore(profile *types.Profile, job *types.Job) *types.MatchResult {
	technicalScore := float64(s.matcher.RequiredSkillsMatchPercent(
		profile.Skills, job.Requirements.RequiredSkills))
	experienceScore := s.experienceScore(profile, job)
	domainScore := s.domainScore(profile, job)
	keywordScore := s.keywordCoverageScore(profile, job)

	totalScore := technicalScore*TechnicalWeight +
		experienceScore*ExperienceWeight +
		domainScore*DomainWeight +
		keywordScore*KeywordCoverageWeight

	matched, missingRequired := s.matcher.MatchSkills(
		profile.Skills, job.Requirements.RequiredSkills)

	missingPreferred := []string{}
	if len(job.Requirements.PreferredSkills) > 0 {
		_, missingPreferred = s.matcher.MatchSkills(
			profile.Skills, job.Requirements.PreferredSkills)
	}

	suggestions := buildSuggestions(missingRequired, missingPreferred,
		technicalScore, experienceScore, domainScore, keywordScore)

	rankedAchievements := s.ranker.RankAchievements(profile.AllAchievements(), job)

	return &types.MatchResult{
		ProfileID:    idOrUnknown(profile.ProfileID),
		JobID:        idOrUnknown(job.JobID),
		OverallScore: int(math.Round(totalScore)),
		Breakdown: types.MatchBreakdown{
			TechnicalSkillsScore: round1(technicalScore),
			ExperienceScore:      round1(experienceScore),
			DomainScore:          round1(domainScore),
			KeywordCoverageScore: round1(keywordScore),
			TotalScore:           round1(totalScore),
		},
		MatchedSkills:          matched,
		MissingRequiredSkills:  missingRequired,
		MissingPreferredSkills: missingPreferred,
		Suggestions:            suggestions,
		RankedAchievements:     rankedAchievements,
	}
}

// experienceScore compares the candidate's estimated years of experience
// against the job's requirement. No requirement means a full score; exceeding
// the requirement never scores above 100.
func (s *Scorer) experienceScore(profile *types.Profile, job *types.Job) float64 {
	required := job.Requirements.RequiredExperienceYears
	if required == nil || *required <= 0 {
		return 100
	}

	estimated := EstimateYears(profile.Experiences)
	return math.Min(100, estimated/float64(*required)*100)
}

// domainScore measures keyword overlap between the candidate's experience
// descriptions and the job's domain text. A job with no domain text scores
// 100: there is nothing to penalize against.
func (s *Scorer) domainScore(profile *types.Profile, job *types.Job) float64 {
	domainText := job.DomainText()
	if strings.TrimSpace(domainText) == "" {
		return 100
	}

	jobDomainKeywords := s.extractor.KeywordSet(domainText)
	if len(jobDomainKeywords) == 0 {
		return 100
	}

	userDomainKeywords := make(map[string]struct{})
	for _, exp := range profile.Experiences {
		if exp.Description == "" {
			continue
		}
		for kw := range s.extractor.KeywordSet(exp.Description) {
			userDomainKeywords[kw] = struct{}{}
		}
	}

	overlap := overlapCount(jobDomainKeywords, userDomainKeywords)
	return math.Min(100, float64(overlap)/float64(len(jobDomainKeywords))*100)
}

// keywordCoverageScore measures how many keywords from the job's description
// and responsibilities appear in the candidate's summary and achievements.
func (s *Scorer) keywordCoverageScore(profile *types.Profile, job *types.Job) float64 {
	jobText := strings.Join([]string{
		job.Title,
		job.Description,
		strings.Join(job.Responsibilities, " "),
	}, " ")

	jobKeywords := s.extractor.KeywordSet(jobText)
	if len(jobKeywords) == 0 {
		return 100
	}

	userParts := []string{profile.Summary}
	for _, achievement := range profile.AllAchievements() {
		userParts = append(userParts, achievement.Text)
	}
	userKeywords := s.extractor.KeywordSet(strings.Join(userParts, " "))

	overlap := overlapCount(jobKeywords, userKeywords)
	return math.Min(100, float64(overlap)/float64(len(jobKeywords))*100)
}

// buildSuggestions generates remediation hints from the gap analysis using
// fixed templates, capped at maxSuggestions.
func buildSuggestions(missingRequired, missingPreferred []string,
	technical, experience, domain, keyword float64) []string {

	suggestions := []string{}

	if len(missingRequired) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"%d required skills are missing: %s",
			len(missingRequired), strings.Join(truncate(missingRequired, maxMissingInSuggestion), ", ")))
	}

	if len(missingPreferred) > 0 && len(suggestions) < 3 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Consider adding experience with preferred skills: %s",
			strings.Join(truncate(missingPreferred, maxPreferredInSuggestion), ", ")))
	}

	if technical < lowTechnicalThreshold {
		suggestions = append(suggestions,
			"Focus on developing the technical skills mentioned in the job description")
	}
	if experience < lowExperienceThreshold {
		suggestions = append(suggestions,
			"Highlight relevant project experience to demonstrate skills in practice")
	}
	if domain < lowDomainThreshold {
		suggestions = append(suggestions,
			"Emphasize any domain knowledge or industry experience related to this role")
	}
	if keyword < lowKeywordThreshold {
		suggestions = append(suggestions,
			"Update your summary and achievements to include more keywords from the job posting")
	}

	return truncate(suggestions, maxSuggestions)
}

func truncate(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func overlapCount(a, b map[string]struct{}) int {
	count := 0
	for item := range a {
		if _, ok := b[item]; ok {
			count++
		}
	}
	return count
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func idOrUnknown(id string) string {
	if id == "" {
		return "unknown"
	}
	return id
}
