// core/barcode/panel.go
package barcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"pbbarcode/core/dna"
)

// LabelDelimiter joins the two reference names of a barcode label.
const LabelDelimiter = "--"

var (
	ErrEmptyPanel     = errors.New("barcode panel is empty")
	ErrUnequalLengths = errors.New("all barcodes must be the same length")
)

// Reference is one named barcode as read from the panel source.
type Reference struct {
	Name     string
	Sequence string
}

// Entry is a panel member. Sequence is the upper-cased input; Aligned is
// the orientation handed to the aligner (odd entries reverse-complemented).
type Entry struct {
	Name     string
	Sequence string
	Aligned  string
}

// Panel is an ordered, immutable set of equal-length barcodes.
type Panel struct {
	entries []Entry
	length  int
}

// NewPanel validates refs and stores them in alignment orientation.
func NewPanel(refs []Reference) (*Panel, error) {
	if len(refs) == 0 {
		return nil, ErrEmptyPanel
	}
	lengths := lo.Uniq(lo.Map(refs, func(r Reference, _ int) int { return len(r.Sequence) }))
	if len(lengths) > 1 {
		return nil, fmt.Errorf("%w: found lengths %v", ErrUnequalLengths, lengths)
	}
	if lengths[0] == 0 {
		return nil, fmt.Errorf("barcode %q has an empty sequence", refs[0].Name)
	}
	p := &Panel{entries: make([]Entry, len(refs)), length: lengths[0]}
	for i, r := range refs {
		seq := strings.ToUpper(r.Sequence)
		aligned := seq
		if i%2 == 1 {
			aligned = dna.RevCompString(seq)
		}
		p.entries[i] = Entry{Name: r.Name, Sequence: seq, Aligned: aligned}
	}
	return p, nil
}

// Len is the number of barcodes.
func (p *Panel) Len() int { return len(p.entries) }

// BarcodeLength is the shared length L of every barcode.
func (p *Panel) BarcodeLength() int { return p.length }

// Entry returns the i-th barcode.
func (p *Panel) Entry(i int) Entry { return p.entries[i] }

// Names returns the barcode names in panel order.
func (p *Panel) Names() []string {
	return lo.Map(p.entries, func(e Entry, _ int) string { return e.Name })
}

// Aligned returns the alignment-orientation sequences in panel order.
func (p *Panel) Aligned() []string {
	return lo.Map(p.entries, func(e Entry, _ int) string { return e.Aligned })
}

// MakeLabel joins two barcode names with LabelDelimiter.
func MakeLabel(a, b string) string { return a + LabelDelimiter + b }
