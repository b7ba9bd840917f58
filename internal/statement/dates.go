package statement

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isoLayout is the canonical output format for all dates. It is also accepted
// as input for every issuer, so normalization is idempotent.
const isoLayout = "2006-01-02"

var monthCaser = cases.Title(language.English)

// normalizeDate parses raw against the layouts in order and returns the date
// as YYYY-MM-DD. Returns false when no layout matches.
func normalizeDate(raw string, layouts []string) (string, bool) {
	cleaned := cleanDateToken(raw)
	for _, layout := range append([]string{isoLayout}, layouts...) {
		t, err := time.Parse(layout, cleaned)
		if err != nil {
			continue
		}
		// Two-digit-year layouts land in the right century already; anything
		// below 100 came from a bare "06"-style token.
		if t.Year() < 100 {
			t = t.AddDate(2000, 0, 0)
		}
		return t.Format(isoLayout), true
	}
	return "", false
}

// cleanDateToken canonicalizes a captured date token so Go's case-sensitive
// month parsing accepts it: "15-APR-2024" becomes "15-Apr-2024", doubled
// spaces collapse, and trailing punctuation is dropped.
func cleanDateToken(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, ".,:;")
	s = monthCaser.String(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}
