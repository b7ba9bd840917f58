package statement

import "regexp"

// Date token fragments. Month matching relies on the (?i) flag that every
// composed pattern carries.
const (
	dateSlash = `\d{1,2}/\d{1,2}/\d{2,4}`
	dateDash  = `\d{1,2}-\d{1,2}-\d{2,4}`
	dateISO   = `\d{4}-\d{2}-\d{2}`
	monthName = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*`
	dateDMon  = `\d{1,2}[-/ ]` + monthName + `[-/ ,]+\d{2,4}`
	dateMonD  = monthName + `\.?\s+\d{1,2},?\s+\d{2,4}`
)

// amountToken captures a currency-formatted number. The anchor patterns place
// an optional currency symbol just before it; the capture itself keeps the sign
// and an optional trailing "Cr" so parseAmount can classify credit balances.
const (
	currencyPrefix = `(?:Rs\.?|INR|₹|\$|£)?\s*`
	amountToken    = `(-?[\d,]+(?:\.\d+)?(?:\s*Cr\b)?)`
)

// fieldRules is the declarative rule table for one issuer: for each field an
// ordered list of anchored capture patterns, plus the date layouts the issuer
// is known to use. Adding an issuer is a new table entry, not new code.
type fieldRules struct {
	last4   []*regexp.Regexp // capture 1: digits after the card mask
	cycle   []*regexp.Regexp // captures 1,2: cycle start and end tokens
	due     []*regexp.Regexp // capture 1: due date token
	total   []*regexp.Regexp // capture 1: amount token
	layouts []string         // tried in order by normalizeDate
}

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(p))
	}
	return res
}

// last4Rules builds the masked-card patterns. The mask fragment differs per
// network: 16-digit cards mask in groups of four, Amex masks 4-6-5.
func last4Rules(extra ...string) []*regexp.Regexp {
	patterns := append([]string{}, extra...)
	patterns = append(patterns,
		`(?i)card\s*(?:number|no\.?)\s*:?\s*(?:[Xx*]{4}[\s-]*){3}(\d{4})`,
		`(?i)(?:[Xx*]{4}[\s-]*){3}(\d{4})`,
		`(?i)card\s*ending\s*(?:in|with)\s*:?\s*(\d{4})`,
		`(?i)(?:[Xx*]{4,12})[\s-]*(\d{4})`,
	)
	return compileAll(patterns...)
}

func cycleRules(date string) []*regexp.Regexp {
	sep := `\s*(?:to|through|–|-)\s*`
	return compileAll(
		`(?i)statement\s*(?:period|date)\s*:?\s*(`+date+`)`+sep+`(`+date+`)`,
		`(?i)billing\s*(?:cycle|period)\s*:?\s*(`+date+`)`+sep+`(`+date+`)`,
		`(?i)from\s*:?\s*(`+date+`)\s*to\s*:?\s*(`+date+`)`,
	)
}

func dueRules(date string) []*regexp.Regexp {
	return compileAll(
		`(?i)payment\s*due\s*(?:date|by|on)?\s*:?\s*(`+date+`)`,
		`(?i)due\s*date\s*:?\s*(`+date+`)`,
		`(?i)pay\s*(?:by|before)\s*:?\s*(`+date+`)`,
	)
}

func totalRules() []*regexp.Regexp {
	return compileAll(
		`(?i)total\s*(?:amount\s*)?dues?\s*:?\s*`+currencyPrefix+amountToken,
		`(?i)(?:amount|balance)\s*payable\s*:?\s*`+currencyPrefix+amountToken,
		`(?i)(?:outstanding|closing)\s*balance\s*:?\s*`+currencyPrefix+amountToken,
		`(?i)new\s*balance\s*:?\s*`+currencyPrefix+amountToken,
	)
}

// rulesByIssuer maps each known issuer to its rule table. ISO dates are always
// accepted in addition to the listed layouts (see normalizeDate), which keeps
// normalization idempotent.
var rulesByIssuer = map[Issuer]*fieldRules{
	IssuerHDFC: {
		last4:   last4Rules(),
		cycle:   cycleRules(`(?:` + dateSlash + `|` + dateISO + `)`),
		due:     dueRules(`(?:` + dateSlash + `|` + dateISO + `)`),
		total:   totalRules(),
		layouts: []string{"02/01/2006", "2/1/2006", "02/01/06"},
	},
	IssuerICICI: {
		last4:   last4Rules(),
		cycle:   cycleRules(`(?:` + dateDash + `|` + dateSlash + `)`),
		due:     dueRules(`(?:` + dateDash + `|` + dateSlash + `)`),
		total:   totalRules(),
		layouts: []string{"02-01-2006", "2-1-2006", "02/01/2006", "02-01-06"},
	},
	IssuerSBI: {
		last4:   last4Rules(),
		cycle:   cycleRules(dateDMon),
		due:     dueRules(dateDMon),
		total:   totalRules(),
		layouts: []string{"02 Jan 2006", "2 Jan 2006", "02-Jan-2006", "02-Jan-06", "02 Jan 06"},
	},
	IssuerAxis: {
		last4:   last4Rules(),
		cycle:   cycleRules(`(?:` + dateSlash + `|` + dateDash + `)`),
		due:     dueRules(`(?:` + dateSlash + `|` + dateDash + `)`),
		total:   totalRules(),
		layouts: []string{"02/01/2006", "2/1/2006", "02-01-2006"},
	},
	IssuerAmex: {
		last4: last4Rules(
			`(?i)[Xx*]{4}[\s-]*[Xx*]{5,6}[\s-]*[Xx*]?(\d{4,5})`,
		),
		cycle:   cycleRules(dateMonD),
		due:     dueRules(dateMonD),
		total:   totalRules(),
		layouts: []string{"January 2, 2006", "Jan 2, 2006", "January 2 2006", "Jan 2 2006"},
	},
}
