// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Job represents a structured job posting produced by an upstream document parser
type Job struct {
	JobID              string         `json:"job_id,omitempty"`
	Title              string         `json:"title" validate:"required"`
	Company            string         `json:"company"`
	Location           string         `json:"location,omitempty"`
	Description        string         `json:"description"`
	CompanyDescription string         `json:"company_description,omitempty"`
	Responsibilities   []string       `json:"responsibilities"`
	Requirements       JobRequirement `json:"requirements"`
	CreatedAt          string         `json:"created_at,omitempty"`
}

// JobRequirement holds the required and preferred qualifications for a job.
// RequiredExperienceYears is nil when the posting does not state a requirement.
type JobRequirement struct {
	RequiredSkills          []string `json:"required_skills"`
	PreferredSkills         []string `json:"preferred_skills"`
	RequiredExperienceYears *int     `json:"required_experience_years,omitempty" validate:"omitempty,gte=0"`
}

// DomainText joins the free text used for domain-overlap scoring.
// Returns an empty string when the posting supplies no domain context.
func (j *Job) DomainText() string {
	switch {
	case j.Description != "" && j.CompanyDescription != "":
		return j.Description + " " + j.CompanyDescription
	case j.Description != "":
		return j.Description
	default:
		return j.CompanyDescription
	}
}
