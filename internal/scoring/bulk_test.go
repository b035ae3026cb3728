package scoring

import (
	"context"
	"fmt"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkMatch_ResultsInInputOrder(t *testing.T) {
	scorer := newTestScorer()
	profile := &types.Profile{
		ProfileID: "profile-1",
		Name:      "Test Candidate",
		Skills:    []types.Skill{{Name: "Python"}},
	}

	jobs := make([]*types.Job, 10)
	for i := range jobs {
		jobs[i] = &types.Job{
			JobID: fmt.Sprintf("job-%d", i),
			Title: "Engineer",
			Requirements: types.JobRequirement{
				RequiredSkills: []string{"python"},
			},
		}
	}

	results, err := scorer.BulkMatch(context.Background(), profile, jobs, 3)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, result := range results {
		assert.Equal(t, fmt.Sprintf("job-%d", i), result.JobID)
		assert.Equal(t, "profile-1", result.ProfileID)
	}
}

func TestBulkMatch_IndependentOfParallelism(t *testing.T) {
	scorer := newTestScorer()
	profile := &types.Profile{
		Name:   "Test Candidate",
		Skills: []types.Skill{{Name: "Python"}, {Name: "Docker"}},
	}
	jobs := []*types.Job{
		{JobID: "a", Title: "Engineer", Requirements: types.JobRequirement{RequiredSkills: []string{"python", "java"}}},
		{JobID: "b", Title: "Engineer", Requirements: types.JobRequirement{RequiredSkills: []string{"docker"}}},
		{JobID: "c", Title: "Engineer"},
	}

	serial, err := scorer.BulkMatch(context.Background(), profile, jobs, 1)
	require.NoError(t, err)
	parallel, err := scorer.BulkMatch(context.Background(), profile, jobs, 8)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestBulkMatch_EmptyJobs(t *testing.T) {
	scorer := newTestScorer()

	results, err := scorer.BulkMatch(context.Background(), &types.Profile{Name: "X"}, nil, 0)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBulkMatch_CancelledContext(t *testing.T) {
	scorer := newTestScorer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []*types.Job{{JobID: "a", Title: "Engineer"}}
	_, err := scorer.BulkMatch(ctx, &types.Profile{Name: "X"}, jobs, 2)

	assert.Error(t, err)
}
