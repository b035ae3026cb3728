package ranking

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRanker() *Ranker {
	return NewRanker(keywords.NewExtractor())
}

func pythonJob() *types.Job {
	return &types.Job{
		Title:            "Backend Engineer",
		Responsibilities: []string{"build applications"},
		Requirements: types.JobRequirement{
			RequiredSkills: []string{"python"},
		},
	}
}

func TestRankAchievements_RelevantOutranksIrrelevant(t *testing.T) {
	ranker := newTestRanker()
	achievements := []types.Achievement{
		{Text: "Organized team meetings"},
		{Text: "Built web applications using Python and Django"},
	}

	ranked := ranker.RankAchievements(achievements, pythonJob())

	require.Len(t, ranked, 2)
	assert.Equal(t, "Built web applications using Python and Django", ranked[0].Achievement.Text)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
	assert.NotEmpty(t, ranked[0].Reasons)
}

func TestRankAchievements_Deterministic(t *testing.T) {
	ranker := newTestRanker()
	achievements := []types.Achievement{
		{Text: "Built web applications using Python and Django"},
		{Text: "Migrated infrastructure to Kubernetes"},
		{Text: "Organized team meetings"},
	}

	first := ranker.RankAchievements(achievements, pythonJob())
	second := ranker.RankAchievements(achievements, pythonJob())

	assert.Equal(t, first, second)
}

func TestRankAchievements_StableTies(t *testing.T) {
	ranker := newTestRanker()
	achievements := []types.Achievement{
		{Text: "Organized team meetings", Metrics: []string{"first"}},
		{Text: "Organized team meetings", Metrics: []string{"second"}},
	}

	ranked := ranker.RankAchievements(achievements, pythonJob())

	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, []string{"first"}, ranked[0].Achievement.Metrics)
	assert.Equal(t, []string{"second"}, ranked[1].Achievement.Metrics)
}

func TestRankAchievements_EmptyInput(t *testing.T) {
	ranker := newTestRanker()

	ranked := ranker.RankAchievements(nil, pythonJob())

	assert.Empty(t, ranked)
	assert.NotNil(t, ranked)
}

func TestRankAchievements_MetricsBonusCapped(t *testing.T) {
	ranker := newTestRanker()
	// No keyword or technology overlap with the job, six declared metrics
	achievements := []types.Achievement{
		{
			Text:    "zzz qqq",
			Metrics: []string{"10%", "20%", "30%", "40%", "50%", "60%"},
		},
	}

	ranked := ranker.RankAchievements(achievements, pythonJob())

	require.Len(t, ranked, 1)
	assert.Equal(t, 20.0, ranked[0].Score)
	assert.Contains(t, ranked[0].Reasons, "contains quantifiable metrics")
}

func TestRankAchievements_DeclaredTechnologiesCount(t *testing.T) {
	ranker := newTestRanker()
	job := &types.Job{
		Title: "Backend Engineer",
		Requirements: types.JobRequirement{
			RequiredSkills: []string{"python"},
		},
	}
	achievements := []types.Achievement{
		{Text: "delivered a service", Technologies: []string{"Python"}},
		{Text: "delivered a service"},
	}

	ranked := ranker.RankAchievements(achievements, job)

	require.Len(t, ranked, 2)
	assert.Equal(t, []string{"Python"}, ranked[0].Achievement.Technologies)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRankAchievements_ScoresBounded(t *testing.T) {
	ranker := newTestRanker()
	achievements := []types.Achievement{
		{
			Text:         "Built Python Django applications with Python, improved by 50%, $2M saved, 10x throughput, 100+ services, 1,000,000 users",
			Technologies: []string{"Python", "Django"},
			Metrics:      []string{"50%", "$2M", "10x"},
		},
	}

	ranked := ranker.RankAchievements(achievements, pythonJob())

	require.Len(t, ranked, 1)
	assert.LessOrEqual(t, ranked[0].Score, 100.0)
	assert.GreaterOrEqual(t, ranked[0].Score, 0.0)
}

func TestRankAchievements_DoesNotMutateInput(t *testing.T) {
	ranker := newTestRanker()
	achievements := []types.Achievement{
		{Text: "Built web applications using Python", RelevanceScore: 0},
	}

	ranker.RankAchievements(achievements, pythonJob())

	assert.Equal(t, 0.0, achievements[0].RelevanceScore)
}
