// internal/writers/calls.go
package writers

import (
	"io"

	"pbbarcode/core/barcode"
	"pbbarcode/internal/jsonlutil"
	"pbbarcode/internal/output"
)

func init() {
	RegisterCall(output.FormatCSV, func(w io.Writer, b Batch) error {
		return output.WriteCSV(w, b.Calls, b.Header)
	})
	RegisterCall(output.FormatJSON, func(w io.Writer, b Batch) error {
		return output.WriteJSON(w, b.Calls)
	})
	RegisterCall(output.FormatXLSX, writeXLSX)
}

// StartCallWriter spins up a writer goroutine for barcode calls. CSV and
// JSONL stream; JSON and XLSX buffer everything and write on close.
func StartCallWriter(out io.Writer, format string, header bool, bufSize int) (chan<- barcode.Call, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	switch format {
	case output.FormatJSONL:
		return jsonlutil.Start(out, bufSize, output.ToAPICall, IsBrokenPipe)
	case output.FormatCSV:
		in := make(chan barcode.Call, bufSize)
		errCh := make(chan error, 1)
		go func() { errCh <- output.StreamCSV(out, in, header) }()
		return in, errCh
	}

	in := make(chan barcode.Call, bufSize)
	errCh := make(chan error, 1)
	go func() {
		var buf []barcode.Call
		for c := range in {
			buf = append(buf, c)
		}
		errCh <- WriteCalls(format, out, Batch{Calls: buf, Header: header})
	}()
	return in, errCh
}
