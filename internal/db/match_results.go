package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-matcher/internal/session"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// MatchSummary is a lightweight listing row for stored match results.
type MatchSummary struct {
	MatchID      string    `json:"match_id"`
	ProfileID    string    `json:"profile_id"`
	JobID        string    `json:"job_id"`
	OverallScore int       `json:"overall_score"`
	CreatedAt    time.Time `json:"created_at"`
}

// SaveProfile upserts a profile keyed by its ID, generating one if absent.
func (db *DB) SaveProfile(ctx context.Context, profile *types.Profile) (string, error) {
	if profile.ProfileID == "" {
		profile.ProfileID = session.NewID("profile")
	}

	content, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (profile_id, name, summary, skills_count, experiences_count, content)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (profile_id) DO UPDATE SET
		   name = $2, summary = $3, skills_count = $4, experiences_count = $5,
		   content = $6, updated_at = NOW()`,
		profile.ProfileID, profile.Name, profile.Summary,
		len(profile.Skills), len(profile.Experiences), content,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save profile: %w", err)
	}
	return profile.ProfileID, nil
}

// SaveJob upserts a job keyed by its ID, generating one if absent.
func (db *DB) SaveJob(ctx context.Context, job *types.Job) (string, error) {
	if job.JobID == "" {
		job.JobID = session.NewID("job")
	}

	content, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to marshal job: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO jobs (job_id, title, company, required_skills_count, preferred_skills_count, content)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (job_id) DO UPDATE SET
		   title = $2, company = $3, required_skills_count = $4, preferred_skills_count = $5,
		   content = $6, updated_at = NOW()`,
		job.JobID, job.Title, job.Company,
		len(job.Requirements.RequiredSkills), len(job.Requirements.PreferredSkills), content,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save job: %w", err)
	}
	return job.JobID, nil
}

// SaveMatchResult stores a match result and returns its generated match ID.
func (db *DB) SaveMatchResult(ctx context.Context, result *types.MatchResult) (string, error) {
	matchID := session.NewID("match")

	content, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal match result: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_results
		   (match_id, profile_id, job_id, overall_score, technical_score, experience_score,
		    domain_score, keyword_coverage_score, matched_skills_count, missing_skills_count, content)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		matchID, result.ProfileID, result.JobID, result.OverallScore,
		result.Breakdown.TechnicalSkillsScore, result.Breakdown.ExperienceScore,
		result.Breakdown.DomainScore, result.Breakdown.KeywordCoverageScore,
		len(result.MatchedSkills), len(result.MissingRequiredSkills), content,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save match result: %w", err)
	}
	return matchID, nil
}

// GetMatchResult retrieves a stored match result by match ID.
func (db *DB) GetMatchResult(ctx context.Context, matchID string) (*types.MatchResult, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM match_results WHERE match_id = $1`, matchID,
	).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("match result %s: %w", matchID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}

	var result types.MatchResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
	}
	return &result, nil
}

// ListMatchResults returns summaries of stored match results with at least
// minScore, newest and highest-scoring first, capped at limit.
func (db *DB) ListMatchResults(ctx context.Context, minScore, limit int) ([]MatchSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT match_id, profile_id, job_id, overall_score, created_at
		 FROM match_results
		 WHERE overall_score >= $1
		 ORDER BY overall_score DESC, created_at DESC
		 LIMIT $2`,
		minScore, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}
	defer rows.Close()

	var summaries []MatchSummary
	for rows.Next() {
		var s MatchSummary
		if err := rows.Scan(&s.MatchID, &s.ProfileID, &s.JobID, &s.OverallScore, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read match results: %w", err)
	}

	return summaries, nil
}
