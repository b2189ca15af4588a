// Package diagnostics provides the structured logger used by the rest of
// this module to report precondition violations and audit-level warnings.
// It wraps zerolog the way production gnark services wire their own
// logger: a single package-level instance, console-formatted by default,
// with a level that callers embedding this module can adjust.
package diagnostics

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("component", "intervals").Logger().
		Level(zerolog.WarnLevel)
)

// Log returns the package-level logger.
func Log() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return &logger
}

// SetLevel adjusts the minimum level the logger emits. Embedding
// applications typically call this once at startup.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(level)
}

// SetOutput replaces the underlying writer, e.g. to switch from the
// human-readable console format to plain JSON in production.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Output(w)
}
