// Package logger provides verbose diagnostics for the ads client.
// When verbose mode is enabled via the --verbose flag, factory and transport
// activity such as token cache hits and SOAP calls is written to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level tags a log line.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer verbose logs go to. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug logs factory and transport internals.
func Debug(format string, args ...any) {
	logf(LevelDebug, format, args...)
}

// Info logs notable events such as a fresh login.
func Info(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

// Warn logs recoverable problems.
func Warn(format string, args ...any) {
	logf(LevelWarn, format, args...)
}

// logf holds the write lock so concurrent lines never interleave.
func logf(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}
