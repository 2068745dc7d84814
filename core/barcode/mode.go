// core/barcode/mode.go
package barcode

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var (
	ErrUnknownMode = errors.New("scoreMode must either be symmetric or paired")
	ErrOddPanel    = errors.New("paired mode requires an even number of barcodes")
)

// Mode selects how per-barcode scores become user-facing labels.
type Mode int

const (
	// Symmetric ranks every barcode on its own; label "name--name".
	Symmetric Mode = iota
	// Paired ranks adjacent forward/reverse barcodes as one label "fwd--rev".
	Paired
)

type modeSpec struct {
	name     string
	validate func(p *Panel) error
	labels   func(p *Panel) []string
	combine  func(rs ReadScores) []float64
}

var modes = [...]modeSpec{
	Symmetric: {
		name:     "symmetric",
		validate: func(*Panel) error { return nil },
		labels:   symmetricLabels,
		combine:  func(rs ReadScores) []float64 { return append([]float64(nil), rs.Scores...) },
	},
	Paired: {
		name:     "paired",
		validate: validatePaired,
		labels:   pairedLabels,
		combine:  combinePaired,
	},
}

// Modes lists the recognised mode names.
func Modes() []string {
	return lo.Map(modes[:], func(m modeSpec, _ int) string { return m.name })
}

// ParseMode maps a mode name to its Mode.
func ParseMode(s string) (Mode, error) {
	for i, m := range modes {
		if m.name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modes[m].name
}

func (m Mode) valid() bool { return m >= 0 && int(m) < len(modes) }

func (m Mode) spec() modeSpec { return modes[m] }

func symmetricLabels(p *Panel) []string {
	return lo.Map(p.entries, func(e Entry, _ int) string { return MakeLabel(e.Name, e.Name) })
}

func pairedLabels(p *Panel) []string {
	return lo.Map(lo.Chunk(p.entries, 2), func(pair []Entry, _ int) string {
		return MakeLabel(pair[0].Name, pair[1].Name)
	})
}

func validatePaired(p *Panel) error {
	if p.Len()%2 != 0 {
		return fmt.Errorf("%w (got %d)", ErrOddPanel, p.Len())
	}
	return nil
}

// combinePaired scores each forward/reverse pair. With one adapter the
// orientation is unknown, so the better side wins. With more, the two
// alternating strand assignments are summed over adapters and the better
// assignment wins.
func combinePaired(rs ReadScores) []float64 {
	out := make([]float64, len(rs.Scores)/2)
	if rs.AdapterCount == 1 {
		for i := range out {
			out[i] = max(rs.Scores[2*i], rs.Scores[2*i+1])
		}
		return out
	}
	for i := range out {
		var paths [2]float64
		for j, a := range rs.PerAdapter {
			paths[j%2] += a[2*i]
			paths[1-j%2] += a[2*i+1]
		}
		out[i] = max(paths[0], paths[1])
	}
	return out
}
