package matching

import (
	"math"

	"github.com/agnivade/levenshtein"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultFuzzyThreshold is the minimum fuzzy similarity ratio (0-100) for two
// normalized skill strings to count as a match. The value is empirically
// tuned; raising it only removes matches, never adds them.
const DefaultFuzzyThreshold = 80

// Matcher decides whether two skill strings denote the same capability and
// matches whole skill lists. A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	registry       *Registry
	fuzzyThreshold int
}

// NewMatcher creates a matcher backed by the given registry, using
// DefaultFuzzyThreshold. A nil registry is treated as empty.
func NewMatcher(registry *Registry) *Matcher {
	if registry == nil {
		registry = EmptyRegistry()
	}
	return &Matcher{
		registry:       registry,
		fuzzyThreshold: DefaultFuzzyThreshold,
	}
}

// WithFuzzyThreshold returns a copy of the matcher with a different fuzzy
// threshold.
func (m *Matcher) WithFuzzyThreshold(threshold int) *Matcher {
	return &Matcher{
		registry:       m.registry,
		fuzzyThreshold: threshold,
	}
}

// MatchSkill reports whether userSkill satisfies requiredSkill.
//
// Decision order, first match wins:
//  1. Exact match of normalized forms.
//  2. Both map to the same canonical name.
//  3. One appears in the other's synonym set.
//  4. Fuzzy similarity ratio >= threshold.
//  5. The user's canonical skill is a child of the required canonical skill.
//
// Unknown skills simply fail every rule; no rule returns an error.
func (m *Matcher) MatchSkill(userSkill, requiredSkill string) bool {
	normUser := Normalize(userSkill)
	normRequired := Normalize(requiredSkill)

	if normUser == normRequired {
		return true
	}

	userCanonical, userOK := m.registry.CanonicalOf(normUser)
	requiredCanonical, requiredOK := m.registry.CanonicalOf(normRequired)

	if userOK && requiredOK && userCanonical == requiredCanonical {
		return true
	}

	if requiredOK && contains(m.registry.SynonymsOf(requiredCanonical), normUser) {
		return true
	}
	if userOK && contains(m.registry.SynonymsOf(userCanonical), normRequired) {
		return true
	}

	if fuzzyRatio(normUser, normRequired) >= m.fuzzyThreshold {
		return true
	}

	// Hierarchy: child skill implies the parent capability, not the reverse.
	if userOK && requiredOK && m.registry.IsChildOf(userCanonical, requiredCanonical) {
		return true
	}

	return false
}

// MatchSkills matches the candidate's skills against a list of job skill
// strings. For each job skill the first satisfying user skill (in input order)
// wins and its proficiency is carried into the record.
//
// The result is a partition: len(matched) + len(missing) == len(requiredSkills)
// holds for any input, including duplicates and empty entries.
func (m *Matcher) MatchSkills(userSkills []types.Skill, requiredSkills []string) ([]types.SkillMatch, []string) {
	matched := make([]types.SkillMatch, 0, len(requiredSkills))
	missing := make([]string, 0)

	for _, required := range requiredSkills {
		found := false
		for _, user := range userSkills {
			if m.MatchSkill(user.Name, required) {
				matched = append(matched, types.SkillMatch{
					Skill:           required,
					Matched:         true,
					Category:        "required",
					UserProficiency: user.Proficiency,
				})
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, required)
		}
	}

	return matched, missing
}

// RequiredSkillsMatchPercent returns the percentage (0-100) of required skills
// matched by the candidate. An empty requirement list is vacuously satisfied
// and returns 100.
func (m *Matcher) RequiredSkillsMatchPercent(userSkills []types.Skill, requiredSkills []string) int {
	if len(requiredSkills) == 0 {
		return 100
	}
	matched, _ := m.MatchSkills(userSkills, requiredSkills)
	return int(math.Round(float64(len(matched)) / float64(len(requiredSkills)) * 100))
}

// MissingSkills holds the required and preferred skills the candidate lacks
type MissingSkills struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// IdentifyMissingSkills determines which required and preferred skills are
// missing from the candidate's profile. The two lists are matched
// independently; an empty preferred list yields an empty preferred result.
func (m *Matcher) IdentifyMissingSkills(userSkills []types.Skill, requiredSkills, preferredSkills []string) MissingSkills {
	_, missingRequired := m.MatchSkills(userSkills, requiredSkills)

	missingPreferred := []string{}
	if len(preferredSkills) > 0 {
		_, missingPreferred = m.MatchSkills(userSkills, preferredSkills)
	}

	return MissingSkills{
		Required:  missingRequired,
		Preferred: missingPreferred,
	}
}

// fuzzyRatio computes an edit-distance-based similarity ratio on a 0-100
// scale: 100 for identical strings, 0 for completely dissimilar ones.
func fuzzyRatio(a, b string) int {
	if a == b {
		return 100
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 100
	}
	distance := levenshtein.ComputeDistance(a, b)
	return int(math.Round((1 - float64(distance)/float64(longest)) * 100))
}

func contains(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
