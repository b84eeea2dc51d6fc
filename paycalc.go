// Package paycalc computes a salesperson's monthly pay: base pay plus a
// commission on sales (with a 2% uplift for Senior sellers) plus a bonus
// when sales reach a threshold.
//
// Example usage:
//
//	res, err := paycalc.Calculate(paycalc.FormInput{
//	    Name:    "Ana",
//	    Base:    "1000",
//	    Sales:   "4000",
//	    Percent: "5",
//	    Tier:    paycalc.Senior,
//	})
//	if err != nil {
//	    // err carries the user-facing message, e.g. a *ValidationError
//	}
//	fmt.Println(res.Total) // 1204
package paycalc

import (
	"github.com/bft-labs/paycalc/internal/domain"
	"github.com/bft-labs/paycalc/internal/payroll"
)

// FormInput is the raw text state of the input form.
type FormInput = domain.FormInput

// InputRecord holds the numeric values of one calculation.
type InputRecord = domain.InputRecord

// ResultRecord is the computed pay.
type ResultRecord = domain.ResultRecord

// Row is a result formatted for display and export.
type Row = domain.Row

// Tier classifies a seller.
type Tier = domain.Tier

// Seller tiers.
const (
	Junior = domain.Junior
	Senior = domain.Senior
)

// ValidationError reports the first violated input rule.
type ValidationError = domain.ValidationError

// SeniorUplift multiplies the commission of Senior sellers.
const SeniorUplift = payroll.SeniorUplift

// ParseNumber converts form text to a number; unparsable text yields NaN.
func ParseNumber(text string) float64 {
	return payroll.ParseNumber(text)
}

// Validate checks an InputRecord and returns it normalized.
func Validate(in InputRecord) (InputRecord, error) {
	return payroll.Validate(in)
}

// Compute derives the pay of a validated record.
func Compute(in InputRecord) ResultRecord {
	return payroll.Compute(in)
}

// Calculate parses, validates and computes in one step.
func Calculate(f FormInput) (ResultRecord, error) {
	return payroll.Calculate(f)
}

// NewRow formats a result for the ledger table.
func NewRow(r ResultRecord) Row {
	return domain.NewRow(r)
}
