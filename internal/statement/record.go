// Package statement provides issuer detection and rule-based field extraction
// for credit card statement text.
package statement

import (
	"github.com/shopspring/decimal"
)

// Issuer identifies the bank that issued the card.
type Issuer string

const (
	IssuerHDFC    Issuer = "HDFC"
	IssuerICICI   Issuer = "ICICI"
	IssuerSBI     Issuer = "SBI"
	IssuerAxis    Issuer = "AXIS"
	IssuerAmex    Issuer = "AMEX"
	IssuerUnknown Issuer = "UNKNOWN"
)

// BillingCycle is the statement's start and end date, both ISO (YYYY-MM-DD).
type BillingCycle struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Record holds the fields extracted from a single statement. Every field except
// Issuer is optional; a nil pointer means the field was not found in the text,
// which is not an error. TotalDue serializes as a decimal string so amounts
// never pass through a float.
type Record struct {
	Issuer       Issuer           `json:"issuer"`
	Last4        *string          `json:"last4"`
	BillingCycle *BillingCycle    `json:"billing_cycle"`
	DueDate      *string          `json:"due_date"`
	TotalDue     *decimal.Decimal `json:"total_due"`
}

// NewRecord returns a record for the given issuer with all fields absent.
func NewRecord(issuer Issuer) Record {
	return Record{Issuer: issuer}
}
