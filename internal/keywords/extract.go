// Package keywords implements rule-based extraction of content keywords,
// technical terms, and quantitative metrics from free text.
package keywords

import (
	"regexp"
	"sort"
	"strings"
)

var (
	wordToken = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+#.-]*`)

	// Technical term patterns
	dottedPackage   = regexp.MustCompile(`\b[A-Z][a-z]+(?:\.[a-z]+)+\b`)
	acronym         = regexp.MustCompile(`\b[A-Z]{2,5}\b`)
	versionToken    = regexp.MustCompile(`(?i)\bv?\d+\.\d+(?:\.\d+)?\b`)
	capitalizedWord = regexp.MustCompile(`\b[A-Z][a-zA-Z]+\b`)

	// Metric patterns, applied independently and unioned
	metricPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d+(?:\.\d+)?%`),          // percentages: 50%, 99.9%
		regexp.MustCompile(`\$\d+(?:[,.]\d+)?[KMBkmb]?`), // money: $100K, $1.5M
		regexp.MustCompile(`(?i)\d+x\b`),              // multipliers: 10x
		regexp.MustCompile(`\d+(?:,\d{3})+`),          // large numbers: 1,000,000
		regexp.MustCompile(`\d+\+`),                   // plus suffix: 100+
	}
)

// Extractor performs rule-based text analysis. It holds no mutable state and
// is safe for concurrent use; construct once and share.
type Extractor struct {
	stopWords   map[string]struct{}
	commonWords map[string]struct{}
}

// NewExtractor creates an extractor with the default stop-word and
// common-English-word sets.
func NewExtractor() *Extractor {
	return &Extractor{
		stopWords:   defaultStopWords,
		commonWords: defaultCommonCapitalized,
	}
}

// Keywords extracts content keywords from text: word-boundary tokens longer
// than two characters, stop words removed, reduced to a lowercase base form.
// Empty input yields an empty slice; duplicates are preserved in token order.
func (e *Extractor) Keywords(text string) []string {
	tokens := wordToken.FindAllString(text, -1)
	keywords := make([]string, 0, len(tokens))

	for _, token := range tokens {
		lower := strings.ToLower(token)
		if len(lower) <= 2 {
			continue
		}
		if _, stop := e.stopWords[lower]; stop {
			continue
		}
		keywords = append(keywords, lemma(lower))
	}

	return keywords
}

// KeywordSet returns the unique keywords of a text as a set.
func (e *Extractor) KeywordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, kw := range e.Keywords(text) {
		set[kw] = struct{}{}
	}
	return set
}

// TechnicalTerms extracts technology identifiers: dotted package names
// (react.js), short acronyms (API, SQL), version tokens (v18, 3.12), and
// capitalized technology names. Results are lowercased, filtered against a
// common-word denylist, deduplicated, and returned in sorted order so output
// is deterministic.
func (e *Extractor) TechnicalTerms(text string) []string {
	seen := make(map[string]struct{})

	collect := func(matches []string) {
		for _, m := range matches {
			lower := strings.ToLower(m)
			if len(lower) <= 1 {
				continue
			}
			seen[lower] = struct{}{}
		}
	}

	collect(dottedPackage.FindAllString(text, -1))
	collect(acronym.FindAllString(text, -1))
	collect(versionToken.FindAllString(text, -1))

	for _, m := range capitalizedWord.FindAllString(text, -1) {
		if _, common := e.commonWords[m]; common {
			continue
		}
		seen[strings.ToLower(m)] = struct{}{}
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	return terms
}

// Metrics extracts quantifiable achievement tokens: percentages, money
// amounts with K/M/B suffix, multipliers, comma-grouped large numbers, and
// plus-suffixed counts. Patterns are applied independently and unioned;
// duplicates beyond exact string equality are kept.
func (e *Extractor) Metrics(text string) []string {
	var metrics []string
	for _, pattern := range metricPatterns {
		metrics = append(metrics, pattern.FindAllString(text, -1)...)
	}
	if metrics == nil {
		return []string{}
	}
	return metrics
}

// lemma reduces a lowercase token to a crude base form by stripping common
// English plural suffixes. Deliberately conservative: wrong merges are worse
// than missed ones for overlap scoring.
func lemma(token string) string {
	switch {
	case strings.HasSuffix(token, "ies") && len(token) > 4:
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "sses"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss") && !strings.HasSuffix(token, "us") && len(token) > 3:
		return token[:len(token)-1]
	}
	return token
}
