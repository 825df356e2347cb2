// Package logging provides the component-tagged logger shared by the shell.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger writes component-tagged log lines.
type Logger interface {
	Infof(component, format string, args ...any)
	Warnf(component, format string, args ...any)
	Errorf(component, format string, args ...any)
}

// NoopLogger discards everything.
type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...any)  {}
func (NoopLogger) Warnf(component, format string, args ...any)  {}
func (NoopLogger) Errorf(component, format string, args ...any) {}

// StdLogger writes through a standard library *log.Logger.
type StdLogger struct {
	l *log.Logger
}

// New creates a logger writing to w with the standard date/time prefix.
func New(w io.Writer) *StdLogger {
	return &StdLogger{l: log.New(w, "", log.LstdFlags)}
}

// Default creates a logger writing to stderr.
func Default() *StdLogger {
	return New(os.Stderr)
}

// Infof logs an informational line.
func (s *StdLogger) Infof(component, format string, args ...any) {
	s.write("INFO", component, format, args...)
}

// Warnf logs a warning line.
func (s *StdLogger) Warnf(component, format string, args ...any) {
	s.write("WARN", component, format, args...)
}

// Errorf logs an error line.
func (s *StdLogger) Errorf(component, format string, args ...any) {
	s.write("ERROR", component, format, args...)
}

func (s *StdLogger) write(level, component, format string, args ...any) {
	s.l.Printf("[%s] %s: %s", level, component, fmt.Sprintf(format, args...))
}
