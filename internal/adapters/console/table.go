// Package console implements the terminal ports: the table display, the
// results panel and the notifier.
package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bft-labs/paycalc/internal/domain"
)

// Table implements ports.TableSink by echoing each committed row and can
// render the whole ledger with aligned columns.
type Table struct {
	w io.Writer
}

// NewTable creates a table writing to w.
func NewTable(w io.Writer) *Table {
	return &Table{w: w}
}

// AppendRow prints a newly committed row.
func (t *Table) AppendRow(row domain.Row) {
	fmt.Fprintf(t.w, "+ %s\n", strings.Join(row.Cells(), " | "))
}

// Render writes the header, rows and an optional footer line.
func (t *Table) Render(rows []domain.Row, footer []string) error {
	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', tabwriter.AlignRight|tabwriter.Debug)
	writeLine(tw, domain.Header)
	for _, r := range rows {
		writeLine(tw, r.Cells())
	}
	if footer != nil {
		writeLine(tw, footer)
	}
	return tw.Flush()
}

func writeLine(w io.Writer, cells []string) {
	fmt.Fprintln(w, strings.Join(cells, "\t")+"\t")
}
