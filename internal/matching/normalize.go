// Package matching implements skill matching with normalization, synonyms,
// fuzzy comparison, and skill hierarchies.
package matching

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Trailing file-style extensions commonly attached to skill names (React.js, Node.TS).
	trailingExtension = regexp.MustCompile(`\.(js|css|py|rb|java|ts)$`)
)

// Normalize canonicalizes a skill or keyword string so all comparisons operate
// on one normal form: lowercase, trimmed, internal whitespace collapsed, and
// known trailing extensions stripped. Pure and idempotent:
// Normalize(Normalize(s)) == Normalize(s) for every input.
func Normalize(s string) string {
	n := strings.ToLower(strings.TrimSpace(s))
	n = whitespaceRun.ReplaceAllString(n, " ")

	// Strip stacked extensions ("node.js.js") in one pass so repeated
	// normalization cannot produce a different result.
	for {
		stripped := trailingExtension.ReplaceAllString(n, "")
		if stripped == n {
			break
		}
		n = stripped
	}

	return n
}
