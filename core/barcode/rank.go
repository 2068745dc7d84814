// core/barcode/rank.go
package barcode

import "sort"

// Hit is one ranked label.
type Hit struct {
	Index int
	Label string
	Score float64
}

// Call is the ranked outcome for one read. Second is nil when fewer than
// two labels exist (a single pair in paired mode, or a one-entry panel).
type Call struct {
	ReadID       string
	AdapterCount int
	Best         Hit
	Second       *Hit
}

// Order returns label indices by descending score; equal scores keep the
// lower index first.
func Order(scores []float64) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })
	return idx
}

// Combine maps read scores onto the label space of the scorer's mode.
func (s *Scorer) Combine(rs ReadScores) []float64 {
	return s.cfg.Mode.spec().combine(rs)
}

// Rank picks the best and second-best labels for rs.
func (s *Scorer) Rank(rs ReadScores) Call {
	scores := s.Combine(rs)
	order := Order(scores)
	c := Call{ReadID: rs.ReadID, AdapterCount: rs.AdapterCount}
	if len(order) == 0 {
		return c
	}
	c.Best = s.hit(order[0], scores)
	if len(order) > 1 {
		h := s.hit(order[1], scores)
		c.Second = &h
	}
	return c
}

func (s *Scorer) hit(i int, scores []float64) Hit {
	return Hit{Index: i, Label: s.labels[i], Score: scores[i]}
}

// Label scores and ranks r. Reads without any scored adapter are skipped
// (ok == false).
func (s *Scorer) Label(r Read) (Call, bool) {
	rs := s.ScoreRead(r)
	if rs.AdapterCount == 0 {
		return Call{}, false
	}
	return s.Rank(rs), true
}
