// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newFS() *flag.FlagSet { return NewFlagSet("test") }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "--barcodes", "bc.fa", "--regions", "r.tsv", "reads.fq")
	if o.AdapterSidePad != 0 || o.InsertSidePad != 25 || o.MaxAdapters != 20 || o.MaxReads != -1 {
		t.Errorf("bad scoring defaults %+v", o)
	}
	if o.ScoreMode != "symmetric" || o.Output != "csv" || o.NoMatchExitCode != 1 {
		t.Errorf("bad defaults %+v", o)
	}
	if !reflect.DeepEqual(o.ReadFiles, []string{"reads.fq"}) {
		t.Errorf("ReadFiles = %v", o.ReadFiles)
	}
}

func TestPositionalsAnywhere(t *testing.T) {
	o := mustParse(t, "a.fq", "--barcodes", "bc.fa", "b.fq", "--progress", "--adapter", "ACGT", "--reads", "c.fq", "-")
	want := []string{"c.fq", "a.fq", "b.fq", "-"}
	if !reflect.DeepEqual(o.ReadFiles, want) {
		t.Fatalf("ReadFiles = %v, want %v", o.ReadFiles, want)
	}
	if !o.Progress || o.Adapter != "ACGT" {
		t.Fatalf("flags lost: %+v", o)
	}
}

func TestFOFNAlone(t *testing.T) {
	o := mustParse(t, "--barcodes", "bc.fa", "--regions", "r.tsv", "--fofn", "in.fofn")
	if o.FOFN != "in.fofn" || len(o.ReadFiles) != 0 {
		t.Fatalf("bad fofn parse %+v", o)
	}
}

func TestGlobPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.fq", "b.fq"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("@r\nA\n+\nI\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	o := mustParse(t, "--barcodes", "bc.fa", "--regions", "r.tsv", filepath.Join(dir, "*.fq"), filepath.Join(dir, "a.fq"))
	if len(o.ReadFiles) != 2 {
		t.Fatalf("glob + duplicate should give 2 files, got %v", o.ReadFiles)
	}
	if _, err := ParseArgs(newFS(), []string{"--barcodes", "bc.fa", "--regions", "r.tsv", filepath.Join(dir, "*.none")}); err == nil {
		t.Fatal("unmatched glob should fail")
	}
}

func TestHelpAndVersion(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	if o := mustParse(t, "--version"); !o.Version {
		t.Fatal("version not set")
	}
}

func TestValidationErrors(t *testing.T) {
	base := []string{"--barcodes", "bc.fa", "--regions", "r.tsv", "x.fq"}
	cases := map[string][]string{
		"no barcodes":    {"--regions", "r.tsv", "x.fq"},
		"no reads":       {"--barcodes", "bc.fa", "--regions", "r.tsv"},
		"no adapters":    {"--barcodes", "bc.fa", "x.fq"},
		"both adapters":  append(append([]string{}, base...), "--adapter", "ACGT"),
		"bad mode":       append(append([]string{}, base...), "--score-mode", "triple"),
		"bad pad":        append(append([]string{}, base...), "--insert-side-pad", "-1"),
		"zero adapters":  append(append([]string{}, base...), "--max-adapters", "0"),
		"zero reads":     append(append([]string{}, base...), "--max-reads", "0"),
		"bad threads":    append(append([]string{}, base...), "--threads", "-2"),
		"bad output":     append(append([]string{}, base...), "--output", "tsv"),
		"xlsx needs out": append(append([]string{}, base...), "--output", "xlsx"),
		"bad exit code":  append(append([]string{}, base...), "--no-match-exit-code", "300"),
		"bad mismatches": {"--barcodes", "bc.fa", "--adapter", "ACGT", "--adapter-mismatches", "-1", "x.fq"},
		"unknown flag":   append(append([]string{}, base...), "--bogus"),
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseArgs(newFS(), args); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}
}

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var s string
	fs.BoolVar(&b, "bool", false, "")
	fs.StringVar(&s, "str", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--bool", "pos1", "--str", "v", "--str=w", "--", "pos2", "--bool"})
	if !reflect.DeepEqual(flagArgs, []string{"--bool", "--str", "v", "--str=w"}) {
		t.Fatalf("flagArgs = %v", flagArgs)
	}
	if !reflect.DeepEqual(posArgs, []string{"pos1", "pos2", "--bool"}) {
		t.Fatalf("posArgs = %v", posArgs)
	}
}
