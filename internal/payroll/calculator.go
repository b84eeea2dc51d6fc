// Package payroll implements the pay rules: text to number conversion,
// input validation, and the commission/seniority/bonus computation.
package payroll

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/bft-labs/paycalc/internal/domain"
)

// SeniorUplift multiplies the commission of Senior sellers (a fixed 2%).
const SeniorUplift = 1.02

// ParseNumber converts form text to a number. Empty text is 0, a comma is
// accepted as decimal separator, and unparsable text yields NaN so that
// the error can be reported by Validate.
func ParseNumber(text string) float64 {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if text == "" {
		return 0
	}
	if isHexLiteral(text) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Out of range literals still carry ±Inf.
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

// isHexLiteral reports whether text is a hexadecimal float such as 0x1p4,
// which strconv accepts but a form amount must not.
func isHexLiteral(text string) bool {
	text = strings.TrimLeft(text, "+-")
	return len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
}

// IsInvalid reports whether v is the invalid marker returned by ParseNumber.
func IsInvalid(v float64) bool {
	return math.IsNaN(v)
}

// BuildInput converts raw form state into an InputRecord without validating it.
func BuildInput(f domain.FormInput) domain.InputRecord {
	return domain.InputRecord{
		Name:         strings.TrimSpace(f.Name),
		Base:         ParseNumber(f.Base),
		Sales:        ParseNumber(f.Sales),
		Percent:      ParseNumber(f.Percent),
		Tier:         f.Tier,
		BonusEnabled: f.BonusEnabled,
		Threshold:    ParseNumber(f.Threshold),
		Bonus:        ParseNumber(f.Bonus),
	}
}

// Validate checks in against the input rules and returns the first
// violation as a *domain.ValidationError. The checks run in a fixed order:
// name, number validity of base/sales/percent, their sign, then the bonus
// fields when the bonus is enabled. The returned record has the bonus
// fields zeroed when the bonus is disabled.
func Validate(in domain.InputRecord) (domain.InputRecord, error) {
	if in.Name == "" {
		return domain.InputRecord{}, &domain.ValidationError{Msg: domain.MsgNameRequired}
	}
	if anyInvalid(in.Base, in.Sales, in.Percent) {
		return domain.InputRecord{}, &domain.ValidationError{Msg: domain.MsgNumbersInvalid}
	}
	if anyNegative(in.Base, in.Sales, in.Percent) {
		return domain.InputRecord{}, &domain.ValidationError{Msg: domain.MsgNegativeValues}
	}

	if !in.BonusEnabled {
		in.Threshold, in.Bonus = 0, 0
		return in, nil
	}
	if anyInvalid(in.Threshold, in.Bonus) {
		return domain.InputRecord{}, &domain.ValidationError{Msg: domain.MsgBonusInvalid}
	}
	if anyNegative(in.Threshold, in.Bonus) {
		return domain.InputRecord{}, &domain.ValidationError{Msg: domain.MsgBonusNegative}
	}
	return in, nil
}

// Compute derives the pay of a validated record.
func Compute(in domain.InputRecord) domain.ResultRecord {
	commission := in.Sales * (in.Percent / 100.0)
	if in.Tier == domain.Senior {
		commission *= SeniorUplift
	}

	var applied float64
	if in.BonusEnabled && in.Sales >= in.Threshold {
		applied = in.Bonus
	}

	return domain.ResultRecord{
		Name:         in.Name,
		Tier:         in.Tier,
		Base:         in.Base,
		Sales:        in.Sales,
		Percent:      in.Percent,
		Commission:   commission,
		AppliedBonus: applied,
		Total:        in.Base + commission + applied,
	}
}

// Calculate runs the full pipeline on raw form state.
func Calculate(f domain.FormInput) (domain.ResultRecord, error) {
	in, err := Validate(BuildInput(f))
	if err != nil {
		return domain.ResultRecord{}, err
	}
	return Compute(in), nil
}

func anyInvalid(vs ...float64) bool {
	for _, v := range vs {
		if IsInvalid(v) {
			return true
		}
	}
	return false
}

func anyNegative(vs ...float64) bool {
	for _, v := range vs {
		if v < 0 {
			return true
		}
	}
	return false
}
