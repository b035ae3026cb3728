// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of a match result.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Profile:  %s\n", result.ProfileID))
	sb.WriteString(fmt.Sprintf("Job:      %s\n", result.JobID))
	sb.WriteString(fmt.Sprintf("Overall:  %d/100\n", result.OverallScore))
	sb.WriteString("\n")
	sb.WriteString("Breakdown:\n")
	sb.WriteString(fmt.Sprintf("  Technical:  %.1f\n", result.Breakdown.TechnicalSkillsScore))
	sb.WriteString(fmt.Sprintf("  Experience: %.1f\n", result.Breakdown.ExperienceScore))
	sb.WriteString(fmt.Sprintf("  Domain:     %.1f\n", result.Breakdown.DomainScore))
	sb.WriteString(fmt.Sprintf("  Keywords:   %.1f\n", result.Breakdown.KeywordCoverageScore))

	if len(result.MissingRequiredSkills) > 0 {
		sb.WriteString("\n")
		sb.WriteString("Missing Required:\n")
		count := min(len(result.MissingRequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MissingRequiredSkills[i]))
		}
		if len(result.MissingRequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingRequiredSkills)-maxItemsToShow))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillMatches outputs how each required skill was resolved.
func (p *Printer) PrintSkillMatches(matches []types.SkillMatch, missing []string) {
	if len(matches) == 0 && len(missing) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d skills:\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("• %s", m.Skill))
		if m.UserProficiency != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", m.UserProficiency))
		}
		sb.WriteString("\n")
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(matches)-maxItemsToShow))
	}

	if len(missing) > 0 {
		skills := strings.Join(missing, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\n\nMissing: %s", skills))
	}

	p.printBox("SKILL MATCHES", sb.String())
}

// PrintRankedAchievements outputs the top ranked achievements with scores and reasons.
func (p *Printer) PrintRankedAchievements(ranked []types.RankedAchievement) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total achievements ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		ra := ranked[i]
		text := ra.Achievement.Text
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, text))
		sb.WriteString(fmt.Sprintf("    Score: %.1f\n", ra.Score))
		if len(ra.Reasons) > 0 {
			reasons := strings.Join(ra.Reasons, "; ")
			if len(reasons) > 40 {
				reasons = reasons[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", reasons))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more achievements", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED ACHIEVEMENTS", sb.String())
}

// PrintSuggestions outputs improvement suggestions for a low-scoring match.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SUGGESTIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		if len(s) > 52 {
			s = s[:49] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s", s))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SUGGESTIONS", sb.String())
}
