// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"pbbarcode/core/barcode"
	"pbbarcode/internal/output"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Barcodes  string
	ReadFiles []string
	FOFN      string

	// Adapters
	Regions           string
	Adapter           string
	AdapterMismatches int

	// Scoring
	AdapterSidePad int
	InsertSidePad  int
	ScoreMode      string
	MaxAdapters    int
	MaxReads       int
	Scheme         string

	// Performance
	Threads int

	// Output
	Output          string
	Out             string
	Header          bool
	NoMatchExitCode int

	// Misc
	Progress bool
	Quiet    bool
	Verbose  bool
	Version  bool
}

// sliceValue appends each value to a *[]string (for --reads).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// NewFlagSet returns a FlagSet with ContinueOnError and the grouped usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	Usage(fs, name)
	return fs
}

// Register wires every flag onto fs.
func Register(fs *flag.FlagSet, o *Options) {
	// Input
	fs.StringVar(&o.Barcodes, "barcodes", "", "barcode FASTA (panel order is significant) [*]")
	fs.StringVar(&o.Barcodes, "b", "", "alias of --barcodes")
	fs.Var(&sliceValue{dst: &o.ReadFiles}, "reads", "FASTA/FASTQ read file(s) (repeatable) or '-'")
	fs.StringVar(&o.FOFN, "fofn", "", "file listing read files, one per line")

	// Adapters
	fs.StringVar(&o.Regions, "regions", "", "adapter regions TSV (read_id start end)")
	fs.StringVar(&o.Adapter, "adapter", "", "adapter sequence to locate in each read")
	fs.IntVar(&o.AdapterMismatches, "adapter-mismatches", 0, "max mismatches per adapter hit [0]")

	// Scoring
	fs.IntVar(&o.AdapterSidePad, "adapter-side-pad", 0, "pad with adapterSidePad bases [0]")
	fs.IntVar(&o.InsertSidePad, "insert-side-pad", 25, "pad with insertSidePad bases [25]")
	fs.StringVar(&o.ScoreMode, "score-mode", barcode.Symmetric.String(), "symmetric | paired [symmetric]")
	fs.IntVar(&o.MaxAdapters, "max-adapters", 20, "only score the first maxAdapters [20]")
	fs.IntVar(&o.MaxReads, "max-reads", -1, "label at most N reads per file (-1 = all) [-1]")
	fs.StringVar(&o.Scheme, "scheme", "", "TOML file overriding alignment scores")

	// Performance
	fs.IntVar(&o.Threads, "threads", 0, "worker threads over input files (0=all CPUs) [0]")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&o.Output, "output", output.FormatCSV, "output: "+strings.Join(output.Formats, " | ")+" [csv]")
	fs.StringVar(&o.Output, "o", output.FormatCSV, "alias of --output")
	fs.StringVar(&o.Out, "out", "", "write output to FILE instead of stdout (required for xlsx)")
	fs.BoolVar(&o.Header, "header", false, "print a header line (csv) [false]")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no read was labeled [1]")

	// Misc
	fs.BoolVar(&o.Progress, "progress", false, "draw a progress bar on stderr [false]")
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential messages [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Verbose, "verbose", false, "print debug messages [false]")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
}

// ParseArgs registers and parses all flags and returns an Options struct.
// Read files may be given as positionals (globs allowed) or via --reads.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	Register(fs, &o)
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	if len(posArgs) > 0 {
		exp, err := ExpandPositionals(posArgs)
		if err != nil {
			return o, err
		}
		o.ReadFiles = append(o.ReadFiles, exp...)
	}
	return o, Validate(&o)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if o.Barcodes == "" {
		return errors.New("--barcodes is required")
	}
	if len(o.ReadFiles) == 0 && o.FOFN == "" {
		return errors.New("provide read files (positionals, --reads) or --fofn")
	}
	switch {
	case o.Regions != "" && o.Adapter != "":
		return errors.New("--regions conflicts with --adapter")
	case o.Regions == "" && o.Adapter == "":
		return errors.New("provide --regions or --adapter")
	}
	if o.AdapterMismatches < 0 {
		return errors.New("--adapter-mismatches must be ≥ 0")
	}
	if o.AdapterSidePad < 0 || o.InsertSidePad < 0 {
		return errors.New("--adapter-side-pad and --insert-side-pad must be ≥ 0")
	}
	if _, err := barcode.ParseMode(o.ScoreMode); err != nil {
		return err
	}
	if o.MaxAdapters < 1 {
		return errors.New("--max-adapters must be ≥ 1")
	}
	if o.MaxReads == 0 || o.MaxReads < -1 {
		return errors.New("--max-reads must be -1 (all) or > 0")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if !lo.Contains(output.Formats, o.Output) {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Output == output.FormatXLSX && o.Out == "" {
		return errors.New("--output xlsx requires --out FILE")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
