// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"pbbarcode/core/barcode"
)

// Batch is the payload handed to buffered writers.
type Batch struct {
	Calls  []barcode.Call
	Header bool
}

// CallWriters maps an output format to a buffered writer.
// Register in init() blocks; last registration wins.
var CallWriters = map[string]func(w io.Writer, b Batch) error{}

func RegisterCall(format string, fn func(io.Writer, Batch) error) { CallWriters[format] = fn }

// WriteCalls dispatches a whole batch to the writer registered for format.
func WriteCalls(format string, w io.Writer, b Batch) error {
	fn, ok := CallWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, b)
}
