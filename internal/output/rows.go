// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"pbbarcode/core/barcode"
)

// FormatScore renders a score with the shortest exact decimal form.
func FormatScore(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// RowFields returns the eight CSV columns of a call. A missing second hit
// yields three empty fields.
func RowFields(c barcode.Call) []string {
	row := []string{
		c.ReadID,
		strconv.Itoa(c.AdapterCount),
		strconv.Itoa(c.Best.Index),
		c.Best.Label,
		FormatScore(c.Best.Score),
		"", "", "",
	}
	if s := c.Second; s != nil {
		row[5] = strconv.Itoa(s.Index)
		row[6] = s.Label
		row[7] = FormatScore(s.Score)
	}
	return row
}

// FormatRowCSV returns one CSV line without the trailing newline.
func FormatRowCSV(c barcode.Call) string { return strings.Join(RowFields(c), ",") }
