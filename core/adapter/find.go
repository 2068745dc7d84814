// core/adapter/find.go
package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"pbbarcode/core/barcode"
	"pbbarcode/core/dna"
)

/* ----------------------- types --------------------- */

// Match is one adapter hit in read coordinates.
type Match struct {
	Pos        int
	Length     int
	Mismatches int
	Reverse    bool // hit of the reverse-complemented adapter
}

// Finder locates an adapter on both strands of a read with up to MaxMM
// IUPAC-aware mismatches. Read-side N is always a mismatch.
type Finder struct {
	fwd   []byte
	rev   []byte
	maxMM int
}

/* ---------------------- helpers -------------------- */

func isUnambiguous(p []byte) bool {
	for _, c := range p {
		if c != 'A' && c != 'C' && c != 'G' && c != 'T' {
			return false
		}
	}
	return true
}

// NewFinder validates the adapter sequence (IUPAC letters only).
func NewFinder(seq string, maxMismatches int) (*Finder, error) {
	seq = strings.ToUpper(strings.TrimSpace(seq))
	if seq == "" {
		return nil, errors.New("adapter sequence is empty")
	}
	if maxMismatches < 0 {
		return nil, fmt.Errorf("adapter mismatches must be >= 0 (got %d)", maxMismatches)
	}
	for i := 0; i < len(seq); i++ {
		if dna.Mask(seq[i]) == 0 {
			return nil, fmt.Errorf("adapter has non-IUPAC base %q at %d", seq[i], i)
		}
	}
	fwd := []byte(seq)
	return &Finder{fwd: fwd, rev: dna.RevComp(fwd), maxMM: maxMismatches}, nil
}

/* --------------------------- scanning -------------------------- */

// scan returns every window of seq within maxMM mismatches of pattern.
func scan(seq, pattern []byte, maxMM int) []Match {
	pl := len(pattern)
	if pl == 0 || len(seq) < pl {
		return nil
	}
	var out []Match

	// Exact fast path: bytes.Index jump scanning.
	if maxMM == 0 && isUnambiguous(pattern) {
		upper := bytes.ToUpper(seq)
		for i := 0; ; {
			j := bytes.Index(upper[i:], pattern)
			if j < 0 {
				break
			}
			out = append(out, Match{Pos: i + j, Length: pl})
			i += j + 1
		}
		return out
	}

window:
	for pos := 0; pos <= len(seq)-pl; pos++ {
		mm := 0
		for j := 0; j < pl; j++ {
			if !dna.BaseMatch(seq[pos+j], pattern[j]) {
				mm++
				if mm > maxMM {
					continue window
				}
			}
		}
		out = append(out, Match{Pos: pos, Length: pl, Mismatches: mm})
	}
	return out
}

// FindAll returns the raw hits on both strands, unfiltered.
func (f *Finder) FindAll(seq []byte) []Match {
	hits := scan(seq, f.fwd, f.maxMM)
	if !bytes.Equal(f.fwd, f.rev) {
		for _, m := range scan(seq, f.rev, f.maxMM) {
			m.Reverse = true
			hits = append(hits, m)
		}
	}
	return hits
}

// Find returns non-overlapping adapter hits in increasing position.
// Overlaps are resolved in favour of fewer mismatches, then lower position.
func (f *Finder) Find(seq []byte) []Match {
	hits := f.FindAll(seq)
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Mismatches != hits[j].Mismatches {
			return hits[i].Mismatches < hits[j].Mismatches
		}
		if hits[i].Pos != hits[j].Pos {
			return hits[i].Pos < hits[j].Pos
		}
		return !hits[i].Reverse && hits[j].Reverse
	})
	kept := make([]Match, 0, len(hits))
	for _, h := range hits {
		overlaps := false
		for _, k := range kept {
			if h.Pos < k.Pos+k.Length && k.Pos < h.Pos+h.Length {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, h)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].Pos < kept[j].Pos })
	return kept
}

// Annotate reports the adapter intervals of a read; it lets a Finder stand
// in wherever adapter regions are looked up per read.
func (f *Finder) Annotate(_ string, seq []byte) []barcode.Interval {
	ms := f.Find(seq)
	out := make([]barcode.Interval, len(ms))
	for i, m := range ms {
		out[i] = barcode.Interval{Start: m.Pos, End: m.Pos + m.Length}
	}
	return out
}
