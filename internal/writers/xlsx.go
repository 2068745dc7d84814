// internal/writers/xlsx.go
package writers

import (
	"io"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"pbbarcode/internal/output"
)

// XLSXSheet is the name of the single worksheet in XLSX output.
const XLSXSheet = "barcodes"

// writeXLSX renders the batch as a one-sheet workbook. The header row is
// always present; scores stay numeric cells.
func writeXLSX(w io.Writer, b Batch) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), XLSXSheet); err != nil {
		return err
	}
	header := lo.Map(output.Columns(), func(s string, _ int) any { return s })
	if err := f.SetSheetRow(XLSXSheet, "A1", &header); err != nil {
		return err
	}
	for i, c := range b.Calls {
		row := []any{c.ReadID, c.AdapterCount, c.Best.Index, c.Best.Label, c.Best.Score}
		if s := c.Second; s != nil {
			row = append(row, s.Index, s.Label, s.Score)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(XLSXSheet, cell, &row); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}
