// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillMatch records the outcome of matching one job skill against the candidate's skills
type SkillMatch struct {
	Skill           string `json:"skill"`
	Matched         bool   `json:"matched"`
	Category        string `json:"category"` // "required" or "preferred"
	UserProficiency string `json:"user_proficiency,omitempty"`
}

// MatchBreakdown holds the four weighted component scores, each in [0,100]
type MatchBreakdown struct {
	TechnicalSkillsScore float64 `json:"technical_skills_score"`
	ExperienceScore      float64 `json:"experience_score"`
	DomainScore          float64 `json:"domain_score"`
	KeywordCoverageScore float64 `json:"keyword_coverage_score"`
	TotalScore           float64 `json:"total_score"`
}

// RankedAchievement wraps an achievement with its relevance score and explanation.
// The wrapped achievement is a copy; ranking never mutates caller input.
type RankedAchievement struct {
	Achievement Achievement `json:"achievement"`
	Score       float64     `json:"score"`
	Reasons     []string    `json:"reasons"`
}

// MatchResult is the aggregate outcome of matching a profile against a job.
// All fields are plain serializable values so downstream consumers (renderer,
// persistence, protocol layers) need no dependency on engine internals.
type MatchResult struct {
	ProfileID              string              `json:"profile_id"`
	JobID                  string              `json:"job_id"`
	OverallScore           int                 `json:"overall_score"`
	Breakdown              MatchBreakdown      `json:"breakdown"`
	MatchedSkills          []SkillMatch        `json:"matched_skills"`
	MissingRequiredSkills  []string            `json:"missing_required_skills"`
	MissingPreferredSkills []string            `json:"missing_preferred_skills"`
	Suggestions            []string            `json:"suggestions"`
	RankedAchievements     []RankedAchievement `json:"ranked_achievements"`
	CreatedAt              string              `json:"created_at,omitempty"`
}
