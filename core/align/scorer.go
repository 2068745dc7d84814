// core/align/scorer.go
package align

import (
	"errors"
	"fmt"
	"sync"

	"pbbarcode/core/dna"
)

// ErrEmptyPanel is returned when a Scorer is built without references.
var ErrEmptyPanel = errors.New("reference panel is empty")

// negInf is low enough that no chain of penalties over short sequences can
// climb back above zero, and high enough that adding one penalty cannot
// overflow int32.
const negInf int32 = -1 << 28

// Scorer aligns queries against a fixed reference panel. It holds no
// per-query state; use it from as many goroutines as needed.
type Scorer struct {
	refs      [][]byte // dna.Code-encoded references
	maxRef    int
	scheme    Scheme
	sub       [5][5]int32
	gapOpen   int32
	gapExtend int32
	scratch   sync.Pool
}

// Scratch is the per-worker DP state: one H row, one F row and the encoded
// query. It must not be shared between goroutines.
type Scratch struct {
	q []byte
	h []int32
	f []int32
}

// NewScorer encodes the panel once and precomputes the substitution table.
func NewScorer(panel []string, scheme Scheme) (*Scorer, error) {
	if len(panel) == 0 {
		return nil, ErrEmptyPanel
	}
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	s := &Scorer{
		refs:      make([][]byte, len(panel)),
		scheme:    scheme,
		gapOpen:   int32(scheme.GapOpen),
		gapExtend: int32(scheme.GapExtend),
	}
	for i, ref := range panel {
		if len(ref) == 0 {
			return nil, fmt.Errorf("reference %d is empty", i)
		}
		enc := make([]byte, len(ref))
		for j := 0; j < len(ref); j++ {
			enc[j] = dna.Code(ref[j])
		}
		s.refs[i] = enc
		if len(enc) > s.maxRef {
			s.maxRef = len(enc)
		}
	}
	for a := 0; a < 5; a++ {
		for b := 0; b < 5; b++ {
			switch {
			case a == int(dna.Ambiguous) || b == int(dna.Ambiguous):
				s.sub[a][b] = int32(scheme.Ambiguous)
			case a == b:
				s.sub[a][b] = int32(scheme.Match)
			default:
				s.sub[a][b] = int32(scheme.Mismatch)
			}
		}
	}
	s.scratch.New = func() any { return s.NewScratch() }
	return s, nil
}

// Len is the panel size, i.e. the length of every score vector.
func (s *Scorer) Len() int { return len(s.refs) }

// Scheme returns the scoring constants the Scorer was built with.
func (s *Scorer) Scheme() Scheme { return s.scheme }

// NewScratch returns DP rows sized for the longest reference.
func (s *Scorer) NewScratch() *Scratch {
	return &Scratch{
		q: make([]byte, 0, 64),
		h: make([]int32, s.maxRef+1),
		f: make([]int32, s.maxRef+1),
	}
}

// Score returns one local-alignment score per reference. An empty query
// yields the zero vector.
func (s *Scorer) Score(query string) []float64 {
	dst := make([]float64, len(s.refs))
	if query == "" {
		return dst
	}
	scr := s.scratch.Get().(*Scratch)
	s.ScoreInto(scr, dst, query)
	s.scratch.Put(scr)
	return dst
}

// ScoreInto writes the scores for query into dst using scr for DP rows and
// returns dst. dst is reallocated only when its length differs from Len().
func (s *Scorer) ScoreInto(scr *Scratch, dst []float64, query string) []float64 {
	if len(dst) != len(s.refs) {
		dst = make([]float64, len(s.refs))
	}
	if query == "" {
		for i := range dst {
			dst[i] = 0
		}
		return dst
	}
	scr.q = scr.q[:0]
	for i := 0; i < len(query); i++ {
		scr.q = append(scr.q, dna.Code(query[i]))
	}
	if len(scr.h) < s.maxRef+1 {
		scr.h = make([]int32, s.maxRef+1)
		scr.f = make([]int32, s.maxRef+1)
	}
	for i, ref := range s.refs {
		dst[i] = float64(s.local(scr, ref))
	}
	return dst
}

// local is the Gotoh form of Smith–Waterman over rolling rows. h holds the
// previous query row until column r is overwritten; e carries the
// horizontal gap state along the current row.
func (s *Scorer) local(scr *Scratch, ref []byte) int32 {
	m := len(ref)
	h, f := scr.h[:m+1], scr.f[:m+1]
	for r := 0; r <= m; r++ {
		h[r] = 0
		f[r] = negInf
	}
	var best int32
	for _, qc := range scr.q {
		row := &s.sub[qc]
		diag := h[0]
		e := negInf
		for r := 1; r <= m; r++ {
			up := h[r]
			if v := up + s.gapOpen; v > f[r]+s.gapExtend {
				f[r] = v
			} else {
				f[r] += s.gapExtend
			}
			if v := h[r-1] + s.gapOpen; v > e+s.gapExtend {
				e = v
			} else {
				e += s.gapExtend
			}
			v := diag + row[ref[r-1]]
			if e > v {
				v = e
			}
			if f[r] > v {
				v = f[r]
			}
			if v < 0 {
				v = 0
			}
			diag = up
			h[r] = v
			if v > best {
				best = v
			}
		}
	}
	return best
}
