// Package logging wraps charmbracelet/log with the swon defaults: plain
// stderr output, no timestamps, level names as used in configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Levels lists the accepted level names, most verbose first.
var Levels = []string{"debug", "info", "warn", "error"}

//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var (
	defaultMu     sync.Mutex
	defaultLogger *log.Logger
)

// New returns a stderr logger at level. Unknown levels fall back to info.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter returns a logger writing to w at level.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "swon",
	})
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	logger := log.New(io.Discard)
	logger.SetLevel(log.FatalLevel + 1)
	return logger
}

// ParseLevel converts a configuration level name. The empty string is info.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q (want one of %s)", level, strings.Join(Levels, ", "))
	}
}

// Default returns the package-level logger, creating it at info level.
func Default() *log.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New("info")
	}
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// SetLevel changes the level of the package-level logger. Unknown levels
// are ignored.
func SetLevel(level string) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return
	}
	Default().SetLevel(lvl)
}
