// internal/barcodes/load.go
package barcodes

import (
	"errors"
	"fmt"
	"io"

	"github.com/shenwei356/bio/seqio/fastx"

	"pbbarcode/core/barcode"
)

// Load reads a barcode panel from a FASTA (or FASTQ) file, keeping file
// order. Record IDs become barcode names. Gzip input is handled by fastx.
func Load(path string) ([]barcode.Reference, error) {
	r, err := fastx.NewReader(nil, path, "")
	if err != nil {
		return nil, fmt.Errorf("open barcodes %s: %w", path, err)
	}
	defer r.Close()

	var refs []barcode.Reference
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read barcodes %s: %w", path, err)
		}
		// fastx reuses record buffers between reads.
		refs = append(refs, barcode.Reference{
			Name:     string(rec.ID),
			Sequence: string(rec.Seq.Seq),
		})
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, barcode.ErrEmptyPanel)
	}
	return refs, nil
}

// LoadPanel is Load followed by barcode.NewPanel.
func LoadPanel(path string) (*barcode.Panel, error) {
	refs, err := Load(path)
	if err != nil {
		return nil, err
	}
	p, err := barcode.NewPanel(refs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
