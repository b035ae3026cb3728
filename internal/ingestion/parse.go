package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/types"
)

// section labels recognized by the rule-based splitter, lowercased.
var (
	requiredHeaders = []string{
		"requirements", "required qualifications", "required skills",
		"qualifications", "what you'll need", "what you need", "must have",
	}
	preferredHeaders = []string{
		"preferred qualifications", "preferred skills", "nice to have",
		"nice-to-have", "bonus points", "preferred",
	}
	responsibilityHeaders = []string{
		"responsibilities", "what you'll do", "what you will do",
		"the role", "about the role", "your impact",
	}
	companyHeaders = []string{
		"about us", "about the company", "who we are",
	}
)

// ParseJob splits cleaned posting text into the structured Job shape using
// section headers and bullet markers. The first non-empty line becomes the
// title; lines outside any recognized section accumulate into the description.
func ParseJob(text string) *types.Job {
	job := &types.Job{
		Responsibilities: []string{},
		Requirements: types.JobRequirement{
			RequiredSkills:  []string{},
			PreferredSkills: []string{},
		},
	}

	var description []string
	var companyDesc []string
	section := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		header := strings.ToLower(strings.Trim(line, "#*: "))
		switch {
		case matchesHeader(header, requiredHeaders):
			section = "required"
			continue
		case matchesHeader(header, preferredHeaders):
			section = "preferred"
			continue
		case matchesHeader(header, responsibilityHeaders):
			section = "responsibilities"
			continue
		case matchesHeader(header, companyHeaders):
			section = "company"
			continue
		}

		if job.Title == "" {
			job.Title = strings.Trim(line, "# ")
			continue
		}

		item, isBullet := trimBullet(line)
		switch section {
		case "required":
			if isBullet || item != "" {
				job.Requirements.RequiredSkills = append(job.Requirements.RequiredSkills, item)
			}
		case "preferred":
			if isBullet || item != "" {
				job.Requirements.PreferredSkills = append(job.Requirements.PreferredSkills, item)
			}
		case "responsibilities":
			if isBullet || item != "" {
				job.Responsibilities = append(job.Responsibilities, item)
			}
		case "company":
			companyDesc = append(companyDesc, item)
		default:
			description = append(description, item)
		}
	}

	job.Description = strings.Join(description, " ")
	job.CompanyDescription = strings.Join(companyDesc, " ")
	return job
}

func matchesHeader(line string, headers []string) bool {
	// Section headers are short; a long line mentioning "requirements" is prose.
	if len(line) > 40 {
		return false
	}
	for _, h := range headers {
		if line == h || strings.HasPrefix(line, h+":") {
			return true
		}
	}
	return false
}

// trimBullet strips a leading bullet marker, reporting whether one was found.
func trimBullet(line string) (string, bool) {
	for _, marker := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return line, false
}

// ExtractWithLLM asks the LLM to structure a job posting directly. Falls back
// to nothing on its own; callers use ParseJob when no API key is available.
func ExtractWithLLM(ctx context.Context, client llm.Client, text string) (*types.Job, error) {
	if client == nil {
		return nil, fmt.Errorf("LLM client required for extraction")
	}

	prompt := buildJobPrompt(text)
	jsonResp, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	jsonResp = llm.CleanJSONBlock(jsonResp)

	var extracted struct {
		Title            string   `json:"title"`
		Company          string   `json:"company"`
		Description      string   `json:"description"`
		AboutCompany     string   `json:"about_company"`
		Responsibilities []string `json:"responsibilities"`
		RequiredSkills   []string `json:"required_skills"`
		PreferredSkills  []string `json:"preferred_skills"`
	}
	if err := json.Unmarshal([]byte(jsonResp), &extracted); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w (content: %s)", err, jsonResp)
	}

	return &types.Job{
		Title:              extracted.Title,
		Company:            extracted.Company,
		Description:        extracted.Description,
		CompanyDescription: extracted.AboutCompany,
		Responsibilities:   extracted.Responsibilities,
		Requirements: types.JobRequirement{
			RequiredSkills:  extracted.RequiredSkills,
			PreferredSkills: extracted.PreferredSkills,
		},
	}, nil
}

func buildJobPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert at reading job postings.\n")
	sb.WriteString("Extract the posting below into this exact JSON object:\n")
	sb.WriteString(`{
  "title": string,
  "company": string,
  "description": string,            // role summary, 1-3 sentences from the text
  "about_company": string,          // company blurb if present, else ""
  "responsibilities": []string,
  "required_skills": []string,      // one skill or qualification per entry
  "preferred_skills": []string
}` + "\n\n")
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract directly from the text, do not invent or summarize beyond it.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation.\n\n")
	sb.WriteString("Posting:\n\"\"\"\n")
	sb.WriteString(text)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}
