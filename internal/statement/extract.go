package statement

import (
	"strings"
)

// Extract applies issuer's rule table to the statement text and returns a
// record with every field filled best-effort. Patterns for a field are tried
// in priority order; a pattern only counts as successful when its capture also
// parses, so a malformed date falls through to the next rule instead of
// poisoning the field. An unknown issuer short-circuits to an all-absent
// record.
func Extract(issuer Issuer, text string) Record {
	rec := NewRecord(issuer)
	rules, ok := rulesByIssuer[issuer]
	if !ok {
		return rec
	}

	t := NormalizeText(text)

	for _, re := range rules.last4 {
		m := re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		digits := m[1]
		if len(digits) >= 4 {
			v := digits[len(digits)-4:]
			rec.Last4 = &v
			break
		}
	}

	for _, re := range rules.cycle {
		m := re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		start, okStart := normalizeDate(m[1], rules.layouts)
		end, okEnd := normalizeDate(m[2], rules.layouts)
		if okStart && okEnd {
			rec.BillingCycle = &BillingCycle{Start: start, End: end}
			break
		}
	}

	for _, re := range rules.due {
		m := re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		if due, parsed := normalizeDate(m[1], rules.layouts); parsed {
			rec.DueDate = &due
			break
		}
	}

	for _, re := range rules.total {
		m := re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		if amt, parsed := parseAmount(m[1]); parsed {
			rec.TotalDue = &amt
			break
		}
	}

	return rec
}

// Parser bundles detection and extraction for callers that process whole
// documents. Page texts are joined with newlines before matching, the same
// shape the per-page PDF collaborator produces.
type Parser struct {
	detector *Detector
}

func NewParser() *Parser {
	return &Parser{detector: NewDetector()}
}

// ParsePages detects the issuer from the document text and extracts the field
// record. It never fails: undetectable issuers and missing fields come back as
// UNKNOWN and nil respectively.
func (p *Parser) ParsePages(pages []string) Record {
	text := strings.Join(pages, "\n")
	return Extract(p.detector.Detect(text), text)
}
