package fofn

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func touch(t *testing.T, fn string) {
	t.Helper()
	if err := os.WriteFile(fn, []byte(">a\nA\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestReadResolvesRelative(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.fa"))
	touch(t, filepath.Join(dir, "b.fa"))
	list := filepath.Join(dir, "in.fofn")
	if err := os.WriteFile(list, []byte("# reads\na.fa\n\n"+filepath.Join(dir, "b.fa")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Read(list)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{filepath.Join(dir, "a.fa"), filepath.Join(dir, "b.fa")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Read = %v, want %v", got, want)
	}
}

func TestReadMissingFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.fa"))
	list := filepath.Join(dir, "in.fofn")
	if err := os.WriteFile(list, []byte("a.fa\nnope.fa\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Read(list)
	if err == nil || !strings.Contains(err.Error(), "nope.fa") {
		t.Fatalf("want missing-file error naming nope.fa, got %v", err)
	}
}

func TestReadEmpty(t *testing.T) {
	list := filepath.Join(t.TempDir(), "in.fofn")
	if err := os.WriteFile(list, []byte("# nothing\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(list); err == nil {
		t.Fatal("expected error for empty fofn")
	}
}
