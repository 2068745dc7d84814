// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"pbbarcode/core/barcode"
)

// Config controls the labeling pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)

	// OnFile, if set, is called from the collector once per input file,
	// in input order, after its calls have been visited.
	OnFile func(FileStats)
}

// FileStats summarizes one input file.
type FileStats struct {
	File    string
	Reads   int // reads streamed
	Labeled int // calls produced
	Err     error
}

type result struct {
	idx   int
	calls []barcode.Call
	stats FileStats
}

// labelFile reads one file to completion and keeps its calls.
func labelFile(ctx context.Context, src Source, lab Labeler, path string) ([]barcode.Call, FileStats) {
	st := FileStats{File: path}
	var calls []barcode.Call
	st.Err = src.Stream(ctx, path, func(r barcode.Read) error {
		st.Reads++
		if c, ok := lab.Label(r); ok {
			calls = append(calls, c)
		}
		return nil
	})
	st.Labeled = len(calls)
	if st.Err != nil {
		st.Err = fmt.Errorf("%s: %w", path, st.Err)
	}
	return calls, st
}

// ForEachCall labels every read of files and calls visit with each call,
// file by file in input order and read by read in file order, regardless
// of Threads. A file that fails is reported, its calls are dropped, and the
// other files keep going. It returns the first error encountered
// (including context cancellation or a visit error).
func ForEachCall(
	ctx context.Context,
	cfg Config,
	files []string,
	src Source,
	lab Labeler,
	visit func(barcode.Call) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Threads > len(files) && len(files) > 0 {
		cfg.Threads = len(files)
	}

	jobs := make(chan int, cfg.Threads)
	results := make(chan result, cfg.Threads)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					calls, st := labelFile(ctx, src, lab, files[i])
					select {
					case results <- result{idx: i, calls: calls, stats: st}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: reorder by file index.
	var (
		cerr    error
		stopped bool // visit failed; deliver nothing more
		cwg     sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]result, cfg.Threads)
		next := 0
		for res := range results {
			pending[res.idx] = res
			for {
				r, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if r.stats.Err != nil {
					// Keep labeling other files; first error will be returned.
					if cerr == nil {
						cerr = r.stats.Err
					}
				} else if !stopped {
					for _, c := range r.calls {
						if err := visit(c); err != nil {
							stopped = true
							if cerr == nil {
								cerr = err
							}
							break
						}
					}
				}
				if cfg.OnFile != nil {
					cfg.OnFile(r.stats)
				}
			}
		}
	}()

	// Feed work
feed:
	for i := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}
