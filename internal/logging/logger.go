// Package logging wires the shared logger used by the command layer.
// All log output goes to stderr; stdout is reserved for command results.
package logging

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

var (
	mu     sync.Mutex
	logger = log.New(os.Stderr)
)

// Options controls logger construction.
type Options struct {
	// Level is one of "debug", "info", "warn", "error"
	Level string

	// Debug forces the debug level regardless of Level
	Debug bool

	// NoColor disables colored log output
	NoColor bool
}

// Setup builds the shared logger from the given options and installs it.
func Setup(opts Options) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	l := log.New(os.Stderr)
	l.SetReportTimestamp(false)

	level := log.InfoLevel
	if parsed, err := log.ParseLevel(opts.Level); err == nil && opts.Level != "" {
		level = parsed
	}
	if opts.Debug {
		level = log.DebugLevel
	}
	l.SetLevel(level)

	if opts.NoColor {
		l.SetColorProfile(termenv.Ascii)
	}

	logger = l
	return l
}

// L returns the shared logger.
func L() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}
