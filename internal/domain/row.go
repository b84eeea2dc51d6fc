package domain

import (
	"math"
	"strconv"
)

// Header is the fixed column header of the ledger table and its exports.
var Header = []string{"Vendedor", "Tipo", "Base ($)", "Ventas ($)", "% Com.", "Bono ($)", "Total ($)"}

// Row is a ledger line as displayed: numeric cells carry two decimals.
type Row struct {
	Name    string
	Tier    string
	Base    string
	Sales   string
	Percent string
	Bonus   string
	Total   string
}

// NewRow formats r for display.
func NewRow(r ResultRecord) Row {
	return Row{
		Name:    r.Name,
		Tier:    r.Tier.String(),
		Base:    FormatAmount(r.Base),
		Sales:   FormatAmount(r.Sales),
		Percent: FormatAmount(r.Percent),
		Bonus:   FormatAmount(r.AppliedBonus),
		Total:   FormatAmount(r.Total),
	}
}

// Cells returns the row in Header order.
func (r Row) Cells() []string {
	return []string{r.Name, r.Tier, r.Base, r.Sales, r.Percent, r.Bonus, r.Total}
}

// Cells written for values that are not finite numbers.
const (
	CellInf    = "inf"
	CellNegInf = "-inf"
	CellNaN    = "nan"
)

// FormatAmount renders v with exactly two decimals and no grouping.
// Infinities and NaN are written as inf, -inf and nan.
func FormatAmount(v float64) string {
	switch {
	case math.IsNaN(v):
		return CellNaN
	case math.IsInf(v, 1):
		return CellInf
	case math.IsInf(v, -1):
		return CellNegInf
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// NonFinite reports whether cell is one of the non-finite renderings of
// FormatAmount.
func NonFinite(cell string) bool {
	return cell == CellInf || cell == CellNegInf || cell == CellNaN
}
