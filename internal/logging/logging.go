// Package logging provides a small leveled logger with optional
// per-subsystem prefixes.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel parses a log level name, case-insensitively. Unrecognized
// names fall back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes timestamped leveled lines to a single destination. All
// methods are safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	level  Level
	prefix string
	output io.Writer
}

// New creates a logger writing to stderr. The TUI owns stdout, so log
// lines must never go there.
func New(level Level) *Logger {
	return &Logger{
		level:  level,
		output: os.Stderr,
	}
}

// WithPrefix returns a logger that tags every line with a subsystem
// name. The child shares the parent's level and destination at the time
// of the call.
func (l *Logger) WithPrefix(name string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{
		level:  l.level,
		prefix: name,
		output: l.output,
	}
}

// SetOutput sets the log output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("15:04:05.000"))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	if l.prefix != "" {
		b.WriteString(l.prefix)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, format, args...)
	b.WriteByte('\n')

	_, _ = io.WriteString(l.output, b.String())
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	return &Logger{
		level:  LevelError + 1,
		output: io.Discard,
	}
}
