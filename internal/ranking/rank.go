// Package ranking scores achievement statements by relevance to a job's
// required skills and responsibilities.
package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Weights for the scoring components. Empirically tuned; the total possible
// score is 100.
const (
	keywordOverlapWeight    = 40.0
	technologyOverlapWeight = 30.0
	metricBonusPerItem      = 5.0
	metricsBonusCap         = 20.0
)

// Ranker scores achievements against jobs. The keyword extractor is an
// explicit dependency; a Ranker holds no mutable state and is safe for
// concurrent use.
type Ranker struct {
	extractor *keywords.Extractor
}

// NewRanker creates a ranker using the given extractor.
func NewRanker(extractor *keywords.Extractor) *Ranker {
	return &Ranker{extractor: extractor}
}

// RankAchievements scores each achievement against the job's required skills
// and responsibilities and returns wrappers sorted by score descending.
//
// The sort is stable: ties preserve input order. Individual scores are
// independent of input order, so permuting the input permutes only tie
// positions. An empty achievement list yields an empty result. Input
// achievements are never mutated.
func (r *Ranker) RankAchievements(achievements []types.Achievement, job *types.Job) []types.RankedAchievement {
	jobText := strings.Join([]string{
		job.Description,
		strings.Join(job.Responsibilities, " "),
		strings.Join(job.Requirements.RequiredSkills, " "),
	}, " ")

	jobKeywords := r.extractor.KeywordSet(jobText)
	jobTech := make(map[string]struct{})
	for _, term := range r.extractor.TechnicalTerms(jobText) {
		jobTech[term] = struct{}{}
	}
	jobSkills := make(map[string]struct{})
	for _, skill := range job.Requirements.RequiredSkills {
		jobSkills[strings.ToLower(skill)] = struct{}{}
	}

	// Union of technical vocabulary used to normalize the overlap ratio.
	techVocabulary := len(jobTech)
	for skill := range jobSkills {
		if _, dup := jobTech[skill]; !dup {
			techVocabulary++
		}
	}

	ranked := make([]types.RankedAchievement, 0, len(achievements))

	for _, achievement := range achievements {
		score := 0.0
		reasons := []string{}

		achKeywords := r.extractor.KeywordSet(achievement.Text)
		achTech := make(map[string]struct{})
		for _, term := range r.extractor.TechnicalTerms(achievement.Text) {
			achTech[term] = struct{}{}
		}
		for _, tech := range achievement.Technologies {
			achTech[strings.ToLower(tech)] = struct{}{}
		}

		// Keyword overlap with the job vocabulary
		keywordOverlap := intersectionSize(achKeywords, jobKeywords)
		if keywordOverlap > 0 {
			denominator := max(len(jobKeywords), 1)
			score += capRatio(float64(keywordOverlap)/float64(denominator)) * keywordOverlapWeight
			reasons = append(reasons, fmt.Sprintf("%d matching keywords", keywordOverlap))
		}

		// Technology and required-skill overlap
		matchedTech := intersection(achTech, jobTech)
		matchedTech = append(matchedTech, intersection(achTech, jobSkills)...)
		matchedTech = dedupeSorted(matchedTech)
		if len(matchedTech) > 0 {
			denominator := max(techVocabulary, 1)
			score += capRatio(float64(len(matchedTech))/float64(denominator)) * technologyOverlapWeight
			reasons = append(reasons, fmt.Sprintf("matching technologies: %s", strings.Join(matchedTech, ", ")))
		}

		// Quantifiable metrics bonus, capped
		metricCount := len(r.extractor.Metrics(achievement.Text)) + len(achievement.Metrics)
		if metricCount > 0 {
			bonus := float64(metricCount) * metricBonusPerItem
			if bonus > metricsBonusCap {
				bonus = metricsBonusCap
			}
			score += bonus
			reasons = append(reasons, "contains quantifiable metrics")
		}

		if score > 100 {
			score = 100
		}
		if score < 0 {
			score = 0
		}

		ranked = append(ranked, types.RankedAchievement{
			Achievement: achievement,
			Score:       score,
			Reasons:     reasons,
		})
	}

	// Stable sort: ties keep original input order for reproducibility.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

func intersectionSize(a, b map[string]struct{}) int {
	count := 0
	for item := range a {
		if _, ok := b[item]; ok {
			count++
		}
	}
	return count
}

func intersection(a, b map[string]struct{}) []string {
	var common []string
	for item := range a {
		if _, ok := b[item]; ok {
			common = append(common, item)
		}
	}
	return common
}

func dedupeSorted(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	sort.Strings(items)
	out := items[:1]
	for _, item := range items[1:] {
		if item != out[len(out)-1] {
			out = append(out, item)
		}
	}
	return out
}

func capRatio(ratio float64) float64 {
	if ratio > 1 {
		return 1
	}
	return ratio
}
