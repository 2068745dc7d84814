// internal/reads/source.go
package reads

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shenwei356/bio/seqio/fastx"

	"pbbarcode/core/barcode"
)

// Source streams annotated reads from FASTA/FASTQ files ("-" is stdin).
type Source struct {
	Annotator Annotator
	MaxReads  int // per file; < 0 means all
}

// Stream calls emit for each read of path in file order. It stops at the
// first emit error, on ctx cancellation, or after MaxReads reads.
func (s Source) Stream(ctx context.Context, path string, emit func(barcode.Read) error) error {
	if s.Annotator == nil {
		return errors.New("reads: no adapter annotator configured")
	}
	if s.MaxReads == 0 {
		return nil
	}
	r, err := fastx.NewReader(nil, path, "")
	if err != nil {
		return fmt.Errorf("open reads %s: %w", path, err)
	}
	defer r.Close()

	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read %s: %w", path, err)
		}
		seq := append([]byte(nil), rec.Seq.Seq...)
		id := string(rec.ID)
		read := &barcode.SeqRead{
			Name:    id,
			Seq:     seq,
			Regions: s.Annotator.Annotate(id, seq),
		}
		if err := emit(read); err != nil {
			return err
		}
		n++
		if s.MaxReads > 0 && n >= s.MaxReads {
			return nil
		}
	}
}
