package cmdutil

import (
	"context"

	"pbbarcode/core/barcode"
	"pbbarcode/internal/pipeline"
)

// RunStream runs the labeling pipeline and streams each call via send.
// It returns the number of calls sent and the first error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	files []string,
	src pipeline.Source,
	lab pipeline.Labeler,
	send func(barcode.Call) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachCall(ctx, cfg, files, src, lab, func(c barcode.Call) error {
		if err := send(c); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
