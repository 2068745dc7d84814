// core/align/scheme.go
package align

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// ErrBadScheme is returned for scoring schemes that cannot produce a
// meaningful local alignment.
var ErrBadScheme = errors.New("invalid alignment scheme")

// Scheme holds the substitution and gap constants. Penalties are stored as
// non-positive numbers and added to the running score.
//
// Ambiguous is the score of any pairing where either base is outside
// {A,C,G,T} (N, other IUPAC codes, gaps). The default of 0 makes such
// positions neutral: they neither reward nor penalise a candidate barcode.
type Scheme struct {
	Match     int `toml:"match"`
	Mismatch  int `toml:"mismatch"`
	GapOpen   int `toml:"gap_open"`
	GapExtend int `toml:"gap_extend"`
	Ambiguous int `toml:"ambiguous"`
}

// DefaultScheme is the classic barcode scoring scheme:
// a constant (non-affine) gap of -7 on both sides.
var DefaultScheme = Scheme{
	Match:     4,
	Mismatch:  -13,
	GapOpen:   -7,
	GapExtend: -7,
	Ambiguous: 0,
}

// Validate checks sign conventions and gap ordering (open <= extend <= 0).
func (s Scheme) Validate() error {
	switch {
	case s.Match <= 0:
		return fmt.Errorf("%w: match must be > 0 (got %d)", ErrBadScheme, s.Match)
	case s.Mismatch > 0:
		return fmt.Errorf("%w: mismatch must be <= 0 (got %d)", ErrBadScheme, s.Mismatch)
	case s.GapExtend > 0:
		return fmt.Errorf("%w: gap_extend must be <= 0 (got %d)", ErrBadScheme, s.GapExtend)
	case s.GapOpen > s.GapExtend:
		return fmt.Errorf("%w: gap_open (%d) must be <= gap_extend (%d)", ErrBadScheme, s.GapOpen, s.GapExtend)
	case s.Ambiguous > s.Match:
		return fmt.Errorf("%w: ambiguous (%d) must not exceed match (%d)", ErrBadScheme, s.Ambiguous, s.Match)
	}
	return nil
}

// DecodeScheme reads TOML overrides on top of DefaultScheme. Keys that are
// not part of Scheme are rejected so typos do not silently fall back.
func DecodeScheme(r io.Reader) (Scheme, error) {
	s := DefaultScheme
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Scheme{}, fmt.Errorf("decode scheme: %w", err)
	}
	if un := md.Undecoded(); len(un) > 0 {
		return Scheme{}, fmt.Errorf("%w: unknown key %q", ErrBadScheme, un[0].String())
	}
	if err := s.Validate(); err != nil {
		return Scheme{}, err
	}
	return s, nil
}

// LoadScheme is DecodeScheme over a file. An empty path yields DefaultScheme.
func LoadScheme(path string) (Scheme, error) {
	if path == "" {
		return DefaultScheme, nil
	}
	s := DefaultScheme
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Scheme{}, fmt.Errorf("%s: %w", path, err)
	}
	if un := md.Undecoded(); len(un) > 0 {
		return Scheme{}, fmt.Errorf("%s: %w: unknown key %q", path, ErrBadScheme, un[0].String())
	}
	if err := s.Validate(); err != nil {
		return Scheme{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
