// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"pbbarcode/internal/version"
)

// Usage installs the grouped help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – label reads by barcode alignment around adapters\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s --barcodes bc.fa (--regions r.tsv | --adapter SEQ) [options] reads.fq [...]\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -b, --barcodes file         Barcode FASTA; panel order is significant [*]")
		fmt.Fprintln(out, "      --reads file            FASTA/FASTQ read file(s) (repeatable) or '-' for STDIN")
		fmt.Fprintln(out, "      --fofn file             File of read file names; all must exist")

		fmt.Fprintln(out, "\nAdapters:")
		fmt.Fprintln(out, "      --regions file          Adapter regions TSV (read_id start end)")
		fmt.Fprintln(out, "      --adapter string        Adapter sequence to locate on both strands")
		fmt.Fprintf(out, "      --adapter-mismatches int  Max mismatches per adapter hit [%s]\n", def("adapter-mismatches"))

		fmt.Fprintln(out, "\nScoring:")
		fmt.Fprintf(out, "      --adapter-side-pad int  Pad with adapterSidePad bases [%s]\n", def("adapter-side-pad"))
		fmt.Fprintf(out, "      --insert-side-pad int   Pad with insertSidePad bases [%s]\n", def("insert-side-pad"))
		fmt.Fprintf(out, "      --score-mode string     symmetric | paired [%s]\n", def("score-mode"))
		fmt.Fprintf(out, "      --max-adapters int      Only score the first maxAdapters [%s]\n", def("max-adapters"))
		fmt.Fprintf(out, "      --max-reads int         Label at most N reads per file (-1=all) [%s]\n", def("max-reads"))
		fmt.Fprintln(out, "      --scheme file           TOML alignment scores (match, mismatch, gap_open, gap_extend, ambiguous)")

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads over input files (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         csv | json | jsonl | xlsx [%s]\n", def("output"))
		fmt.Fprintln(out, "      --out file              Write to FILE instead of STDOUT (required for xlsx)")
		fmt.Fprintf(out, "      --header                Print a header line (csv) [%s]\n", def("header"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no read was labeled [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --progress              Progress bar over input files [%s]\n", def("progress"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential messages [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Print debug messages [%s]\n", def("verbose"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
