// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"pbbarcode/core/adapter"
	"pbbarcode/core/align"
	"pbbarcode/core/barcode"
	"pbbarcode/internal/appcore"
	"pbbarcode/internal/barcodes"
	"pbbarcode/internal/cli"
	"pbbarcode/internal/cmdutil"
	"pbbarcode/internal/fofn"
	"pbbarcode/internal/reads"
	"pbbarcode/internal/version"
	"pbbarcode/internal/writers"
)

const name = "pbbarcode"

// printUsage writes the help text to stdout and maps flush errors to exit codes.
func printUsage(fs *flag.FlagSet, stdout, stderr io.Writer, code int) int {
	outw := bufio.NewWriter(stdout)
	fs.SetOutput(outw)
	fs.Usage()
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(name)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		return printUsage(fs, stdout, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return printUsage(fs, stdout, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return printUsage(fs, stdout, stderr, 2)
	}

	if opts.Version {
		if _, e := fmt.Fprintf(stdout, "%s version %s\n", name, version.Version); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)

	core, err := build(opts, log)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	return appcore.Run(parent, stdout, stderr, core)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// build resolves inputs and constructs the scorer. Every error it returns
// is a configuration error.
func build(opts cli.Options, log *cmdutil.Logger) (appcore.Options, error) {
	files := append([]string(nil), opts.ReadFiles...)
	if opts.FOFN != "" {
		listed, err := fofn.Read(opts.FOFN)
		if err != nil {
			return appcore.Options{}, err
		}
		files = append(files, listed...)
	}

	panel, err := barcodes.LoadPanel(opts.Barcodes)
	if err != nil {
		return appcore.Options{}, err
	}
	scheme, err := align.LoadScheme(opts.Scheme)
	if err != nil {
		return appcore.Options{}, err
	}
	mode, err := barcode.ParseMode(opts.ScoreMode)
	if err != nil {
		return appcore.Options{}, err
	}
	scorer, err := barcode.NewScorer(panel, barcode.Config{
		Mode:           mode,
		AdapterSidePad: opts.AdapterSidePad,
		InsertSidePad:  opts.InsertSidePad,
		MaxAdapters:    opts.MaxAdapters,
		Scheme:         scheme,
	})
	if err != nil {
		return appcore.Options{}, err
	}
	log.Debugf("scoring %d barcodes of length %d with mode %s, insertSidePad %d, adapterSidePad %d, maxAdapters %d",
		panel.Len(), panel.BarcodeLength(), mode, opts.InsertSidePad, opts.AdapterSidePad, opts.MaxAdapters)
	log.Debugf("alignment scheme %+v", scheme)

	var ann reads.Annotator
	if opts.Regions != "" {
		rg, err := reads.LoadRegions(opts.Regions)
		if err != nil {
			return appcore.Options{}, err
		}
		log.Debugf("loaded adapter regions for %d reads", len(rg))
		ann = rg
	} else {
		f, err := adapter.NewFinder(opts.Adapter, opts.AdapterMismatches)
		if err != nil {
			return appcore.Options{}, err
		}
		ann = f
	}

	return appcore.Options{
		Files:           files,
		Source:          reads.Source{Annotator: ann, MaxReads: opts.MaxReads},
		Labeler:         scorer,
		Threads:         opts.Threads,
		Output:          opts.Output,
		Out:             opts.Out,
		Header:          opts.Header,
		NoMatchExitCode: opts.NoMatchExitCode,
		Progress:        opts.Progress,
		Log:             log,
	}, nil
}
