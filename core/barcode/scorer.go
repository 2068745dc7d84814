// core/barcode/scorer.go
package barcode

import (
	"errors"
	"fmt"

	"pbbarcode/core/align"
)

// ErrBadConfig wraps invalid padding or adapter limits.
var ErrBadConfig = errors.New("invalid barcode scorer config")

// Config controls flank extraction and ranking.
type Config struct {
	Mode           Mode
	AdapterSidePad int // bases kept on the adapter side of each flank
	InsertSidePad  int // extra bases kept on the insert side of each flank
	MaxAdapters    int // only the first MaxAdapters adapters are scored
	Scheme         align.Scheme
}

// DefaultConfig is the library default; the CLI pads wider (25) and scores
// more adapters (20).
func DefaultConfig() Config {
	return Config{
		Mode:           Symmetric,
		AdapterSidePad: 0,
		InsertSidePad:  4,
		MaxAdapters:    10,
		Scheme:         align.DefaultScheme,
	}
}

// ReadScores is the transient result of scoring one read.
type ReadScores struct {
	ReadID       string
	AdapterCount int
	Scores       []float64   // sum of PerAdapter, one entry per barcode
	PerAdapter   [][]float64 // one vector per scored adapter, encounter order
}

// Scorer owns the panel, its aligner and the ranking policy. It is
// immutable after NewScorer and safe for concurrent use.
type Scorer struct {
	cfg     Config
	panel   *Panel
	aligner *align.Scorer
	labels  []string
}

// NewScorer validates cfg against panel and builds the aligner. A zero
// cfg.Scheme selects align.DefaultScheme.
func NewScorer(panel *Panel, cfg Config) (*Scorer, error) {
	if panel == nil || panel.Len() == 0 {
		return nil, ErrEmptyPanel
	}
	if !cfg.Mode.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, cfg.Mode)
	}
	if cfg.AdapterSidePad < 0 || cfg.InsertSidePad < 0 {
		return nil, fmt.Errorf("%w: pads must be >= 0", ErrBadConfig)
	}
	if cfg.MaxAdapters <= 0 {
		return nil, fmt.Errorf("%w: max adapters must be > 0 (got %d)", ErrBadConfig, cfg.MaxAdapters)
	}
	if cfg.Scheme == (align.Scheme{}) {
		cfg.Scheme = align.DefaultScheme
	}
	m := cfg.Mode.spec()
	if err := m.validate(panel); err != nil {
		return nil, err
	}
	al, err := align.NewScorer(panel.Aligned(), cfg.Scheme)
	if err != nil {
		return nil, err
	}
	return &Scorer{cfg: cfg, panel: panel, aligner: al, labels: m.labels(panel)}, nil
}

func (s *Scorer) Config() Config { return s.cfg }
func (s *Scorer) Panel() *Panel  { return s.panel }
func (s *Scorer) Mode() Mode     { return s.cfg.Mode }

// Labels returns the user-facing labels, indexed like Call hits.
func (s *Scorer) Labels() []string { return append([]string(nil), s.labels...) }

// ScoreFlanks scores one adapter: the mean over present flanks of the
// per-barcode alignment scores, or the zero vector if neither is present.
func (s *Scorer) ScoreFlanks(f Flanks) []float64 {
	fwd := s.aligner.Score(f.Left)
	rev := s.aligner.Score(f.Right)
	present := f.Present()
	if present == 0 {
		return fwd
	}
	for i := range fwd {
		fwd[i] = (fwd[i] + rev[i]) / float64(present)
	}
	return fwd
}

// ScoreRead scores the first MaxAdapters adapters of r and sums them.
func (s *Scorer) ScoreRead(r Read) ReadScores {
	adapters := r.Adapters()
	if len(adapters) > s.cfg.MaxAdapters {
		adapters = adapters[:s.cfg.MaxAdapters]
	}
	rs := ReadScores{
		ReadID:       r.ID(),
		AdapterCount: len(adapters),
		Scores:       make([]float64, s.panel.Len()),
		PerAdapter:   make([][]float64, 0, len(adapters)),
	}
	L := s.panel.BarcodeLength()
	for _, a := range adapters {
		f := ExtractFlanks(r, a.Start, a.End, L, s.cfg.InsertSidePad, s.cfg.AdapterSidePad)
		v := s.ScoreFlanks(f)
		for i, x := range v {
			rs.Scores[i] += x
		}
		rs.PerAdapter = append(rs.PerAdapter, v)
	}
	return rs
}
