package fs

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/bft-labs/paycalc/internal/domain"
)

// CSVExporter implements ports.Exporter as comma-separated UTF-8 text with
// CRLF line endings.
type CSVExporter struct{}

// NewCSVExporter creates a new CSVExporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export writes header and rows to path, cell strings verbatim.
func (e *CSVExporter) Export(ctx context.Context, path string, header []string, rows []domain.Row) error {
	return writeAtomic(ctx, path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		cw.UseCRLF = true

		if err := cw.Write(header); err != nil {
			return err
		}
		for _, r := range rows {
			if err := cw.Write(r.Cells()); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}
