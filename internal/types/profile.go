// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile represents a complete candidate profile produced by an upstream document parser.
// The matching engine treats it as read-only input.
type Profile struct {
	ProfileID   string       `json:"profile_id,omitempty"`
	Name        string       `json:"name" validate:"required"`
	Contact     *ContactInfo `json:"contact,omitempty"`
	Summary     string       `json:"summary"`
	Experiences []Experience `json:"experiences"`
	Skills      []Skill      `json:"skills" validate:"dive"`
	CreatedAt   string       `json:"created_at,omitempty"`
}

// ContactInfo holds contact details for a candidate
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Experience represents a single work experience entry
type Experience struct {
	Company      string        `json:"company"`
	Title        string        `json:"title"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	Description  string        `json:"description,omitempty"`
	Achievements []Achievement `json:"achievements"`
	Technologies []string      `json:"technologies,omitempty"`
}

// Achievement represents a single accomplishment statement from work experience.
// RelevanceScore is populated on serialized output for downstream consumers;
// the ranker itself returns RankedAchievement wrappers and never writes back here.
type Achievement struct {
	Text           string   `json:"text" validate:"required"`
	Technologies   []string `json:"technologies"`
	Metrics        []string `json:"metrics"`
	RelevanceScore float64  `json:"relevance_score"`
}

// Skill represents a candidate skill with optional proficiency and tenure
type Skill struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category"`
	Proficiency string `json:"proficiency,omitempty" validate:"omitempty,oneof=Expert Advanced Intermediate Basic"`
	Years       int    `json:"years,omitempty" validate:"gte=0"`
}

// AllAchievements flattens achievements across all experience entries,
// preserving input order.
func (p *Profile) AllAchievements() []Achievement {
	var all []Achievement
	for _, exp := range p.Experiences {
		all = append(all, exp.Achievements...)
	}
	return all
}
