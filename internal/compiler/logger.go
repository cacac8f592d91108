package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger provides verbose output for pipeline stages during a build.
type Logger struct {
	enabled bool
	out     *slog.Logger
}

// NewLogger creates a new logger instance writing text records to stderr.
func NewLogger(enabled bool) *Logger {
	l := &Logger{enabled: enabled}
	l.SetOutput(os.Stderr)
	return l
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = slog.New(slog.NewTextHandler(w, nil)).With("component", "regdfa")
}

// SetLogger routes records to an existing slog logger.
func (l *Logger) SetLogger(logger *slog.Logger) {
	l.out = logger.With("component", "regdfa")
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		l.out.Info(fmt.Sprintf(format, args...))
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		l.out.Info("=== "+name+" ===", "section", name)
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
