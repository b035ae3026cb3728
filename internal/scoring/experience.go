package scoring

import (
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/types"
)

// FallbackYearsPerEntry is the duration credited for an experience entry
// whose dates cannot be parsed. Empirically chosen; do not adjust without
// evidence.
const FallbackYearsPerEntry = 2.0

// dateLayouts are tried in order when parsing experience dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"Jan 2006",
	"January 2006",
	"2006",
}

// EstimateYears sums the durations of all experience entries. Entries whose
// dates cannot be parsed contribute FallbackYearsPerEntry each, so the
// estimate is always defined.
func EstimateYears(experiences []types.Experience) float64 {
	return estimateYearsAt(experiences, time.Now())
}

func estimateYearsAt(experiences []types.Experience, now time.Time) float64 {
	total := 0.0

	for _, exp := range experiences {
		start, startOK := parseExperienceDate(exp.StartDate, now)

		// An absent end date means the position is ongoing.
		endDate := exp.EndDate
		if strings.TrimSpace(endDate) == "" {
			endDate = "present"
		}
		end, endOK := parseExperienceDate(endDate, now)

		if !startOK || !endOK || end.Before(start) {
			total += FallbackYearsPerEntry
			continue
		}

		total += end.Sub(start).Hours() / (24 * 365.25)
	}

	return total
}

// parseExperienceDate parses a date string from an experience entry.
// "present" and its variants (and an empty end date) resolve to now.
func parseExperienceDate(s string, now time.Time) (time.Time, bool) {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	switch trimmed {
	case "present", "current", "now":
		return now, true
	case "":
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
