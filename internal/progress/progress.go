// Package progress draws a per-file progress bar on stderr.
package progress

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Bar counts finished input files. A nil *Bar is a no-op, so callers
// need not check whether progress was requested.
type Bar struct {
	bar *pb.ProgressBar
}

// New starts a bar over total files written to w, or returns nil when
// disabled.
func New(w io.Writer, total int, enabled bool) *Bar {
	if !enabled || total <= 0 {
		return nil
	}
	b := pb.Full.New(total).SetWriter(w)
	b.Set("prefix", "files ")
	return &Bar{bar: b.Start()}
}

// Done marks one more file as finished.
func (b *Bar) Done() {
	if b == nil {
		return
	}
	b.bar.Increment()
}

// Current reports the finished count.
func (b *Bar) Current() int64 {
	if b == nil {
		return 0
	}
	return b.bar.Current()
}

// Finish stops drawing. Safe to call more than once.
func (b *Bar) Finish() {
	if b == nil {
		return
	}
	b.bar.Finish()
}
