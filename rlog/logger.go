// Package rlog provides the injectable logger used by the renderer. It is
// silent by default since the renderer runs inside a sandboxed display
// loop where stdout/stderr may not be wired up to anything useful; callers
// that want diagnostics install a StreamLogger and call SetDebug(true) on
// it (Noop, the default, ignores SetDebug).
package rlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Logger is the logging surface the renderer depends on.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// StreamLogger routes DEBUG/INFO lines to one writer and WARN/ERROR lines
// to another, so a host pulling canvas diagnostics off stdout never has a
// failure message spliced into the middle of a frame's worth of output.
// The debug gate is a plain atomic flag: read far more often than it's
// toggled (every Debugf call checks it), so there's no need for a mutex
// guarding a single bool.
type StreamLogger struct {
	debug atomic.Bool
	out   *log.Logger
	err   *log.Logger
}

// NewStreamLogger builds a logger tagged with component, writing to the
// given streams. Debug logging starts disabled.
func NewStreamLogger(component string, out, err io.Writer) *StreamLogger {
	prefix := ""
	if component != "" {
		prefix = "[" + component + "] "
	}
	flags := log.LstdFlags | log.Lmicroseconds
	return &StreamLogger{
		out: log.New(out, prefix, flags),
		err: log.New(err, prefix, flags),
	}
}

// NewDefaultLogger is NewStreamLogger wired to the process's stdout/stderr.
func NewDefaultLogger(component string) *StreamLogger {
	return NewStreamLogger(component, os.Stdout, os.Stderr)
}

func (l *StreamLogger) DebugEnabled() bool    { return l.debug.Load() }
func (l *StreamLogger) SetDebug(enabled bool) { l.debug.Store(enabled) }

func (l *StreamLogger) Debugf(format string, args ...any) {
	if !l.debug.Load() {
		return
	}
	l.out.Print("DEBUG: " + fmt.Sprintf(format, args...))
}

func (l *StreamLogger) Infof(format string, args ...any) {
	l.out.Print("INFO: " + fmt.Sprintf(format, args...))
}

func (l *StreamLogger) Warnf(format string, args ...any) {
	l.err.Print("WARN: " + fmt.Sprintf(format, args...))
}

func (l *StreamLogger) Errorf(format string, args ...any) {
	l.err.Print("ERROR: " + fmt.Sprintf(format, args...))
}

// Noop discards everything; used as the zero-value default so callers
// never need a nil check.
type Noop struct{}

func (Noop) DebugEnabled() bool                { return false }
func (Noop) SetDebug(bool)                     {}
func (Noop) Debugf(format string, args ...any) {}
func (Noop) Infof(format string, args ...any)  {}
func (Noop) Warnf(format string, args ...any)  {}
func (Noop) Errorf(format string, args ...any) {}
