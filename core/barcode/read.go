// core/barcode/read.go
package barcode

// Interval is a half-open adapter region [Start, End) in read coordinates.
type Interval struct {
	Start int
	End   int
}

// Read is the minimal view of a sequencing read the scorer needs.
//
// Bases returns the half-open slice [start, end) and false when the range
// falls outside the read. Adapters must be in increasing coordinate order.
type Read interface {
	ID() string
	Bases(start, end int) (string, bool)
	Adapters() []Interval
}

// SeqRead is an in-memory Read.
type SeqRead struct {
	Name    string
	Seq     []byte
	Regions []Interval
}

func (r *SeqRead) ID() string { return r.Name }

func (r *SeqRead) Bases(start, end int) (string, bool) {
	if start < 0 || end > len(r.Seq) || start > end {
		return "", false
	}
	return string(r.Seq[start:end]), true
}

func (r *SeqRead) Adapters() []Interval { return r.Regions }
