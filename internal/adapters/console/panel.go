package console

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bft-labs/paycalc/internal/domain"
)

// Panel prints the results of a calculation with grouped amounts in the
// configured locale, e.g. "Comisión: $1,234.50".
type Panel struct {
	w io.Writer
	p *message.Printer
}

// NewPanel creates a panel for the BCP 47 locale tag (e.g. "en", "es-AR").
func NewPanel(w io.Writer, locale string) (*Panel, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Panel{w: w, p: message.NewPrinter(tag)}, nil
}

// Lines returns the three result lines for r.
func (p *Panel) Lines(r domain.ResultRecord) []string {
	return []string{
		p.p.Sprintf("Comisión: $%.2f", r.Commission),
		p.p.Sprintf("Bono: $%.2f", r.AppliedBonus),
		p.p.Sprintf("Sueldo Total: $%.2f", r.Total),
	}
}

// Show prints the result lines.
func (p *Panel) Show(r domain.ResultRecord) {
	for _, l := range p.Lines(r) {
		fmt.Fprintln(p.w, l)
	}
}

// Clear prints the zeroed panel shown after a reset.
func (p *Panel) Clear() {
	p.Show(domain.ResultRecord{})
}
