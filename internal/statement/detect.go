package statement

import (
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"golang.org/x/text/unicode/norm"
)

// issuerRule binds an issuer to the marker substrings that identify it. A rule
// matches when any of its markers appears in the text. Rule order is the
// tie-break: the earliest matching rule wins.
type issuerRule struct {
	issuer  Issuer
	markers []string
}

// issuerRules is ordered. Markers are matched against uppercased,
// whitespace-collapsed text, so each marker carries a joined variant to cover
// PDF extractors that drop spaces between words.
var issuerRules = []issuerRule{
	{IssuerHDFC, []string{"HDFC BANK", "HDFCBANK"}},
	{IssuerICICI, []string{"ICICI BANK", "ICICIBANK"}},
	{IssuerSBI, []string{"SBI CARD", "SBICARD", "STATE BANK"}},
	{IssuerAxis, []string{"AXIS BANK", "AXISBANK"}},
	{IssuerAmex, []string{"AMERICAN EXPRESS", "AMEX"}},
}

// Detector classifies statement text against the known issuers. It runs a
// single Aho-Corasick pass over the text, so detection cost is independent of
// the number of markers.
type Detector struct {
	matcher *ahocorasick.Matcher
	owners  []int // marker index -> index into issuerRules
}

// NewDetector builds a detector over the issuer marker table.
func NewDetector() *Detector {
	var patterns [][]byte
	var owners []int
	for ruleIdx, rule := range issuerRules {
		for _, m := range rule.markers {
			patterns = append(patterns, []byte(m))
			owners = append(owners, ruleIdx)
		}
	}
	return &Detector{
		matcher: ahocorasick.NewMatcher(patterns),
		owners:  owners,
	}
}

// Detect returns the issuer whose markers appear in text, or IssuerUnknown.
func (d *Detector) Detect(text string) Issuer {
	hits := d.matcher.Match([]byte(strings.ToUpper(NormalizeText(text))))
	if len(hits) == 0 {
		return IssuerUnknown
	}

	best := len(issuerRules)
	for _, idx := range hits {
		if idx < 0 || idx >= len(d.owners) {
			continue
		}
		if ruleIdx := d.owners[idx]; ruleIdx < best {
			best = ruleIdx
		}
	}
	if best == len(issuerRules) {
		return IssuerUnknown
	}
	return issuerRules[best].issuer
}

var whitespaceRe = regexp.MustCompile(`[ \t]+`)

// NormalizeText prepares extracted PDF text for pattern matching: NFKC
// normalization (fullwidth digits, ligatures and non-breaking spaces show up in
// PDF text streams) plus horizontal whitespace collapsed to single spaces.
// Newlines and letter case are preserved so line anchors and month names
// survive for later parsing.
func NormalizeText(text string) string {
	text = norm.NFKC.String(text)
	return whitespaceRe.ReplaceAllString(text, " ")
}
