// Package logger prints annotation pipeline diagnostics to stderr.
//
// Everything is gated on the --verbose flag: quiet runs emit nothing, so
// stdout stays clean for piped annotate output. Section marks the start
// of one document's processing; Debug/Info/Warn carry the per-stage
// detail (glossary loads, cache hits, scanner counts, report writes).
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables diagnostic output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether diagnostic output is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects diagnostic output away from os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// logf writes one tagged line when verbose mode is on.
func logf(tag, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, tag+" "+format+"\n", args...)
	}
}

// Debug reports per-stage detail of the annotation pipeline.
func Debug(format string, args ...any) {
	logf("[DEBUG]", format, args...)
}

// Info reports notable but expected events.
func Info(format string, args ...any) {
	logf("[INFO]", format, args...)
}

// Warn reports recoverable problems, like fail-open glossary entries or a
// report write that was skipped.
func Warn(format string, args ...any) {
	logf("[WARN]", format, args...)
}

// Section marks the start of one document's processing.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
