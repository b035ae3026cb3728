package scoring

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScorer() *Scorer {
	return NewScorer(matching.NewMatcher(nil), keywords.NewExtractor())
}

func intPtr(v int) *int { return &v }

func TestCalculateMatchScore_WeightedTotal(t *testing.T) {
	scorer := newTestScorer()

	// Technical is 50 (one of two required skills); every other component has
	// nothing to penalize and scores 100.
	profile := &types.Profile{
		ProfileID: "profile-1",
		Name:      "Test Candidate",
		Skills:    []types.Skill{{Name: "Python", Proficiency: "Expert"}},
	}
	job := &types.Job{
		JobID: "job-1",
		Requirements: types.JobRequirement{
			RequiredSkills: []string{"python", "java"},
		},
	}

	result := scorer.CalculateMatchScore(profile, job)

	assert.Equal(t, 50.0, result.Breakdown.TechnicalSkillsScore)
	assert.Equal(t, 100.0, result.Breakdown.ExperienceScore)
	assert.Equal(t, 100.0, result.Breakdown.DomainScore)
	assert.Equal(t, 100.0, result.Breakdown.KeywordCoverageScore)
	assert.Equal(t, 80.0, result.Breakdown.TotalScore)
	assert.Equal(t, 80, result.OverallScore)
}

func TestCalculateMatchScore_UnparseableDatesUseFallback(t *testing.T) {
	scorer := newTestScorer()

	// Two entries with unparseable dates estimate to 4 years, which satisfies
	// a 3-year requirement in full.
	profile := &types.Profile{
		Name: "Test Candidate",
		Experiences: []types.Experience{
			{Company: "A", Title: "Engineer", StartDate: "unknown", EndDate: "unknown"},
			{Company: "B", Title: "Engineer", StartDate: "unknown", EndDate: "unknown"},
		},
	}
	job := &types.Job{
		Title: "Engineer",
		Requirements: types.JobRequirement{
			RequiredExperienceYears: intPtr(3),
		},
	}

	result := scorer.CalculateMatchScore(profile, job)

	assert.Equal(t, 100.0, result.Breakdown.ExperienceScore)
}

func TestCalculateMatchScore_PartialExperience(t *testing.T) {
	scorer := newTestScorer()

	profile := &types.Profile{
		Name: "Test Candidate",
		Experiences: []types.Experience{
			{Company: "A", Title: "Engineer", StartDate: "unknown", EndDate: "unknown"},
		},
	}
	job := &types.Job{
		Title: "Engineer",
		Requirements: types.JobRequirement{
			RequiredExperienceYears: intPtr(4),
		},
	}

	result := scorer.CalculateMatchScore(profile, job)

	assert.Equal(t, 50.0, result.Breakdown.ExperienceScore)
}

func TestCalculateMatchScore_EmptyJob(t *testing.T) {
	scorer := newTestScorer()

	profile := &types.Profile{Name: "Test Candidate"}
	job := &types.Job{}

	result := scorer.CalculateMatchScore(profile, job)

	// Nothing to penalize: empty requirement lists and empty text all score full.
	assert.Equal(t, 100.0, result.Breakdown.TechnicalSkillsScore)
	assert.Equal(t, 100.0, result.Breakdown.DomainScore)
	assert.Equal(t, 100.0, result.Breakdown.KeywordCoverageScore)
	assert.Equal(t, 100, result.OverallScore)
	assert.Empty(t, result.Suggestions)
}

func TestCalculateMatchScore_BoundedScores(t *testing.T) {
	scorer := newTestScorer()

	profile := &types.Profile{
		Name:    "Test Candidate",
		Summary: "Seasoned engineer with Python, Django, Kubernetes, AWS experience",
		Skills: []types.Skill{
			{Name: "Python"}, {Name: "Django"}, {Name: "Kubernetes"}, {Name: "AWS"},
		},
		Experiences: []types.Experience{
			{Company: "A", Title: "Engineer", StartDate: "2000-01", EndDate: "present",
				Description: "Python services on AWS"},
		},
	}
	job := &types.Job{
		Title:       "Engineer",
		Description: "Python services on AWS",
		Requirements: types.JobRequirement{
			RequiredSkills:          []string{"python"},
			RequiredExperienceYears: intPtr(1),
		},
	}

	result := scorer.CalculateMatchScore(profile, job)

	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)
	for _, score := range []float64{
		result.Breakdown.TechnicalSkillsScore,
		result.Breakdown.ExperienceScore,
		result.Breakdown.DomainScore,
		result.Breakdown.KeywordCoverageScore,
	} {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestCalculateMatchScore_SkillPartition(t *testing.T) {
	scorer := newTestScorer()

	profile := &types.Profile{
		Name:   "Test Candidate",
		Skills: []types.Skill{{Name: "Python"}},
	}
	job := &types.Job{
		Title: "Engineer",
		Requirements: types.JobRequirement{
			RequiredSkills:  []string{"python", "java", "go", "python"},
			PreferredSkills: []string{"kubernetes"},
		},
	}

	result := scorer.CalculateMatchScore(profile, job)

	assert.Equal(t, len(job.Requirements.RequiredSkills),
		len(result.MatchedSkills)+len(result.MissingRequiredSkills))
	assert.Equal(t, []string{"kubernetes"}, result.MissingPreferredSkills)
}

func TestCalculateMatchScore_SuggestionsCapped(t *testing.T) {
	scorer := newTestScorer()

	// Every component lands below its threshold and both missing lists are
	// non-empty, so the raw suggestion count exceeds the cap.
	profile := &types.Profile{Name: "Test Candidate"}
	job := &types.Job{
		Title:       "Platform Engineer",
		Description: "Kubernetes orchestration and cloud infrastructure automation",
		Requirements: types.JobRequirement{
			RequiredSkills:          []string{"kubernetes", "terraform", "golang"},
			PreferredSkills:         []string{"helm"},
			RequiredExperienceYears: intPtr(10),
		},
	}

	result := scorer.CalculateMatchScore(profile, job)

	require.Len(t, result.Suggestions, 5)
	assert.Contains(t, result.Suggestions[0], "3 required skills are missing")
	assert.Contains(t, result.Suggestions[1], "preferred skills")
}

func TestCalculateMatchScore_MissingIDsDefaultToUnknown(t *testing.T) {
	scorer := newTestScorer()

	result := scorer.CalculateMatchScore(&types.Profile{Name: "X"}, &types.Job{})

	assert.Equal(t, "unknown", result.ProfileID)
	assert.Equal(t, "unknown", result.JobID)
}

func TestCalculateMatchScore_RanksAchievements(t *testing.T) {
	scorer := newTestScorer()

	profile := &types.Profile{
		Name: "Test Candidate",
		Experiences: []types.Experience{
			{
				Company: "A", Title: "Engineer",
				Achievements: []types.Achievement{
					{Text: "Organized team meetings"},
					{Text: "Built web applications using Python and Django"},
				},
			},
		},
	}
	job := &types.Job{
		Title:            "Backend Engineer",
		Responsibilities: []string{"build applications"},
		Requirements: types.JobRequirement{
			RequiredSkills: []string{"python"},
		},
	}

	result := scorer.CalculateMatchScore(profile, job)

	require.Len(t, result.RankedAchievements, 2)
	assert.Equal(t, "Built web applications using Python and Django",
		result.RankedAchievements[0].Achievement.Text)
}
