// internal/reads/regions.go
package reads

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"pbbarcode/core/barcode"
)

// Annotator reports the adapter intervals of a read.
// *adapter.Finder and Regions both satisfy it.
type Annotator interface {
	Annotate(id string, seq []byte) []barcode.Interval
}

// Regions maps read IDs to adapter intervals sorted by start.
type Regions map[string][]barcode.Interval

// Annotate returns the intervals recorded for id; the sequence is unused.
func (rg Regions) Annotate(id string, _ []byte) []barcode.Interval {
	return rg[id]
}

// LoadRegions reads a whitespace-separated table of
//
//	read_id  start  end
//
// rows (0-based, half-open). Blank lines and '#' comments are skipped.
func LoadRegions(path string) (Regions, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	out := make(Regions)
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 3 {
			return nil, fmt.Errorf("%s:%d bad field count", path, ln)
		}
		start, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d bad start: %v", path, ln, err)
		}
		end, err := strconv.Atoi(f[2])
		if err != nil {
			return nil, fmt.Errorf("%s:%d bad end: %v", path, ln, err)
		}
		if start < 0 || end < start {
			return nil, fmt.Errorf("%s:%d bad interval [%d,%d)", path, ln, start, end)
		}
		out[f[0]] = append(out[f[0]], barcode.Interval{Start: start, End: end})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for id := range out {
		iv := out[id]
		sort.SliceStable(iv, func(i, j int) bool { return iv[i].Start < iv[j].Start })
	}
	return out, nil
}
