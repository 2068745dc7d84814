// Package fofn reads "file of file names" inputs.
package fofn

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/liserjrqlxue/goUtil/osUtil"
)

// Read returns the paths listed in a FOFN, one per line. Blank lines and
// '#' comments are skipped; relative paths resolve against the FOFN's
// directory. Every listed file must exist.
func Read(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	dir := filepath.Dir(path)
	var files, missing []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(dir, line)
		}
		if !osUtil.FileExists(line) {
			missing = append(missing, line)
			continue
		}
		files = append(files, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("all files in %s must exist; missing: %s", path, strings.Join(missing, ", "))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s lists no files", path)
	}
	return files, nil
}
