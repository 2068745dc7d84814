package cmdutil

import (
	"bytes"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	cases := []struct {
		name           string
		quiet, verbose bool
		want           string
	}{
		{"default", false, false, "WARN: w 1\nINFO: i 2\n"},
		{"verbose", false, true, "WARN: w 1\nINFO: i 2\nDEBUG: d 3\n"},
		{"quiet", true, false, ""},
		{"quiet wins", true, true, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLogger(&buf, tc.quiet, tc.verbose)
			l.Warnf("w %d", 1)
			l.Infof("i %d", 2)
			l.Debugf("d %d", 3)
			if buf.String() != tc.want {
				t.Fatalf("got %q, want %q", buf.String(), tc.want)
			}
		})
	}
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	l.Warnf("x")
	l.Infof("x")
	l.Debugf("x")
}
