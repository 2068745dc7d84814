package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"pbbarcode/core/barcode"
)

func sampleCalls() []barcode.Call {
	return []barcode.Call{
		{
			ReadID: "m1/10", AdapterCount: 2,
			Best:   barcode.Hit{Index: 1, Label: "bc2--bc2", Score: 62.5},
			Second: &barcode.Hit{Index: 0, Label: "bc1--bc1", Score: 20},
		},
		{
			ReadID: "m1/11", AdapterCount: 1,
			Best: barcode.Hit{Index: 0, Label: "bc1fwd--bc1rev", Score: 32},
		},
	}
}

func TestFormatRowCSV(t *testing.T) {
	calls := sampleCalls()
	if got, want := FormatRowCSV(calls[0]), "m1/10,2,1,bc2--bc2,62.5,0,bc1--bc1,20"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := FormatRowCSV(calls[1]), "m1/11,1,0,bc1fwd--bc1rev,32,,,"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatScore(t *testing.T) {
	for v, want := range map[float64]string{0: "0", 32: "32", 14.5: "14.5", 1.0 / 3: "0.3333333333333333"} {
		if got := FormatScore(v); got != want {
			t.Errorf("FormatScore(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestWriteCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleCalls(), true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || lines[0] != CSVHeader {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestStreamCSVMatchesWriteCSV(t *testing.T) {
	var a, b bytes.Buffer
	if err := WriteCSV(&a, sampleCalls(), false); err != nil {
		t.Fatal(err)
	}
	ch := make(chan barcode.Call, 2)
	for _, c := range sampleCalls() {
		ch <- c
	}
	close(ch)
	if err := StreamCSV(&b, ch, false); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Fatalf("stream %q != batch %q", b.String(), a.String())
	}
}

func TestWriteJSONOmitsMissingSecond(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleCalls()); err != nil {
		t.Fatal(err)
	}
	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 objects, got %d", len(got))
	}
	if got[0]["second_index"] != float64(0) || got[0]["second_label"] != "bc1--bc1" {
		t.Fatalf("first call second hit missing: %v", got[0])
	}
	if _, ok := got[1]["second_index"]; ok {
		t.Fatalf("second_index should be omitted: %v", got[1])
	}
}
