// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/dustin/go-humanize"

	"pbbarcode/core/barcode"
	"pbbarcode/internal/cmdutil"
	"pbbarcode/internal/pipeline"
	"pbbarcode/internal/progress"
	"pbbarcode/internal/writers"
)

// Options is a fully resolved run: inputs located, scorer built.
type Options struct {
	Files   []string
	Source  pipeline.Source
	Labeler pipeline.Labeler

	Threads int

	Output          string
	Out             string // "" = stdout
	Header          bool
	NoMatchExitCode int

	Progress bool
	Log      *cmdutil.Logger
}

// Run labels every input file and writes the calls. It returns the process
// exit code: 0 ok, NoMatchExitCode when nothing was labeled, 3 on I/O
// errors, 130 on cancellation.
func Run(parent context.Context, stdout, stderr io.Writer, o Options) int {
	dst := stdout
	if o.Out != "" {
		fh, err := os.Create(o.Out)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		defer func() { _ = fh.Close() }()
		dst = fh
	}
	outw := bufio.NewWriter(dst)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	bar := progress.New(stderr, len(o.Files), o.Progress)
	reads, failed := 0, 0
	onFile := func(st pipeline.FileStats) {
		reads += st.Reads
		if st.Err != nil {
			failed++
			if !errors.Is(st.Err, context.Canceled) {
				o.Log.Warnf("%v", st.Err)
			}
		} else {
			o.Log.Debugf("labeled %d of %d reads from %s", st.Labeled, st.Reads, st.File)
		}
		bar.Done()
	}

	inCh, writeErr := writers.StartCallWriter(outw, o.Output, o.Header, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := cmdutil.RunStream(
		ctx,
		pipeline.Config{Threads: thr, OnFile: onFile},
		o.Files,
		o.Source,
		o.Labeler,
		func(c barcode.Call) error {
			select {
			case inCh <- c:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)
	bar.Finish()

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		o.Log.Infof("labeled %s of %s reads; %d of %d files failed",
			humanize.Comma(int64(total)), humanize.Comma(int64(reads)), failed, len(o.Files))
		return 3
	}
	o.Log.Infof("labeled %s of %s reads from %s",
		humanize.Comma(int64(total)), humanize.Comma(int64(reads)), plural(len(o.Files), "file"))
	if total == 0 {
		return o.NoMatchExitCode
	}
	return 0
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}
