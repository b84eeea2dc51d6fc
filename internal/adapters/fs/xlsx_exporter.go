package fs

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/bft-labs/paycalc/internal/domain"
)

// SheetName is the worksheet holding the exported table.
const SheetName = "Sueldos"

// XLSXExporter implements ports.Exporter as an Excel workbook with one sheet.
// Cells are written as text, exactly as displayed.
type XLSXExporter struct{}

// NewXLSXExporter creates a new XLSXExporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Export writes header and rows to the workbook at path.
func (e *XLSXExporter) Export(ctx context.Context, path string, header []string, rows []domain.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := setRow(f, 1, header); err != nil {
		return err
	}
	for i, r := range rows {
		if err := setRow(f, i+2, r.Cells()); err != nil {
			return err
		}
	}

	return writeAtomic(ctx, path, func(w io.Writer) error {
		return f.Write(w)
	})
}

func setRow(f *excelize.File, rowNo int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNo, err)
	}
	return nil
}
