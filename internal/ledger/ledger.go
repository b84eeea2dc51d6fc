// Package ledger holds the append-only table of committed results.
package ledger

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/bft-labs/paycalc/internal/domain"
)

// Ledger is an ordered, append-only sequence of rows.
type Ledger struct {
	rows []domain.Row
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{rows: make([]domain.Row, 0)}
}

// Append adds row at the end.
func (l *Ledger) Append(row domain.Row) {
	l.rows = append(l.rows, row)
}

// Rows returns a copy of the rows in commit order.
func (l *Ledger) Rows() []domain.Row {
	out := make([]domain.Row, len(l.rows))
	copy(out, l.rows)
	return out
}

// Len returns the number of rows.
func (l *Ledger) Len() int {
	return len(l.rows)
}

// Empty returns true if no row was committed.
func (l *Ledger) Empty() bool {
	return len(l.rows) == 0
}

// Summary is the footer of the table: the column totals of the displayed
// values, summed exactly. Rows with a non-finite amount are counted in
// Skipped and left out of the totals.
type Summary struct {
	Count   int
	Skipped int
	Base    decimal.Decimal
	Sales   decimal.Decimal
	Bonus   decimal.Decimal
	Total   decimal.Decimal
}

// Summary sums the monetary columns from their displayed strings.
func (l *Ledger) Summary() (Summary, error) {
	s := Summary{
		Count: len(l.rows),
		Base:  decimal.Zero,
		Sales: decimal.Zero,
		Bonus: decimal.Zero,
		Total: decimal.Zero,
	}
	for i, r := range l.rows {
		cells := []string{r.Base, r.Sales, r.Bonus, r.Total}
		if slices.ContainsFunc(cells, domain.NonFinite) {
			s.Skipped++
			continue
		}

		var vals [4]decimal.Decimal
		for j, cell := range cells {
			v, err := decimal.NewFromString(cell)
			if err != nil {
				return Summary{}, fmt.Errorf("row %d: parse %q: %w", i+1, cell, err)
			}
			vals[j] = v
		}
		s.Base = s.Base.Add(vals[0])
		s.Sales = s.Sales.Add(vals[1])
		s.Bonus = s.Bonus.Add(vals[2])
		s.Total = s.Total.Add(vals[3])
	}
	return s, nil
}

// Cells returns the summary as a table line aligned with domain.Header.
func (s Summary) Cells() []string {
	note := ""
	if s.Skipped > 0 {
		note = fmt.Sprintf("%d sin sumar", s.Skipped)
	}
	return []string{
		fmt.Sprintf("%d", s.Count), note,
		s.Base.StringFixed(2),
		s.Sales.StringFixed(2),
		"",
		s.Bonus.StringFixed(2),
		s.Total.StringFixed(2),
	}
}
