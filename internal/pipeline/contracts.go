// internal/pipeline/contracts.go
package pipeline

import (
	"context"

	"pbbarcode/core/barcode"
)

// Source streams the reads of one input file.
// reads.Source satisfies it.
type Source interface {
	Stream(ctx context.Context, path string, emit func(barcode.Read) error) error
}

// Labeler turns a read into a call; ok is false when the read has nothing
// to score. *barcode.Scorer satisfies it.
type Labeler interface {
	Label(r barcode.Read) (barcode.Call, bool)
}
