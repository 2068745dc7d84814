// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"sync"
)

// Logger writes prefixed diagnostic lines to stderr. Quiet suppresses
// everything; Verbose enables DEBUG lines. Safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	dst     io.Writer
	quiet   bool
	verbose bool
}

func NewLogger(dst io.Writer, quiet, verbose bool) *Logger {
	return &Logger{dst: dst, quiet: quiet, verbose: verbose && !quiet}
}

func (l *Logger) printf(prefix, format string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.dst, prefix+format+"\n", a...)
}

func (l *Logger) Warnf(format string, a ...any) {
	if l == nil || l.quiet {
		return
	}
	l.printf("WARN: ", format, a...)
}

func (l *Logger) Infof(format string, a ...any) {
	if l == nil || l.quiet {
		return
	}
	l.printf("INFO: ", format, a...)
}

func (l *Logger) Debugf(format string, a ...any) {
	if l == nil || !l.verbose {
		return
	}
	l.printf("DEBUG: ", format, a...)
}

