package statement

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyTokens are stripped from captured amount strings before parsing.
// Order matters: "Rs." before "Rs" so the dot goes with it.
var currencyTokens = []string{"₹", "Rs.", "Rs", "INR", "$", "£", "€"}

var creditSuffixRe = regexp.MustCompile(`(?i)\s*(?:cr\.?)$`)

// parseAmount converts a currency-formatted capture like "₹1,23,456.78" or
// "$1,234.56" to a fixed-point decimal. Thousands separators are removed
// without interpretation, so Indian-style grouping parses the same as Western
// grouping. A leading minus or a trailing "Cr" marks a credit balance and
// yields a negative amount. Returns false when the remainder is not a number.
func parseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)

	credit := false
	if creditSuffixRe.MatchString(s) {
		credit = true
		s = creditSuffixRe.ReplaceAllString(s, "")
	}

	for _, tok := range currencyTokens {
		s = strings.ReplaceAll(s, tok, "")
		s = strings.ReplaceAll(s, strings.ToUpper(tok), "")
		s = strings.ReplaceAll(s, strings.ToLower(tok), "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if credit {
		d = d.Neg()
	}
	return d, true
}
