// internal/output/csv.go
package output

import (
	"fmt"
	"io"

	"pbbarcode/core/barcode"
)

// WriteCSV prints one line per call.
func WriteCSV(w io.Writer, list []barcode.Call, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, CSVHeader); err != nil {
			return err
		}
	}
	for _, c := range list {
		if _, err := fmt.Fprintln(w, FormatRowCSV(c)); err != nil {
			return err
		}
	}
	return nil
}

// StreamCSV prints calls as they arrive; it drains in on error so the
// producer never blocks.
func StreamCSV(w io.Writer, in <-chan barcode.Call, header bool) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, CSVHeader)
	}
	for c := range in {
		if err != nil {
			continue
		}
		_, err = fmt.Fprintln(w, FormatRowCSV(c))
	}
	return err
}
