// Package logging builds the structured logger shared by the simulation and hosts.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

var defaultLogger = New(os.Stderr, log.InfoLevel)

// New creates a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "chaos",
		ReportTimestamp: true,
	})
}

// Discard returns a logger that drops everything. Tests use it.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}

// ParseLevel maps a level name from the environment to a log level.
// An empty or unknown name yields info.
func ParseLevel(name string) log.Level {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return log.InfoLevel
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Default returns the package logger.
func Default() *log.Logger {
	return defaultLogger
}

// SetDefault replaces the package logger.
func SetDefault(l *log.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// OrDefault returns l, or the package logger when l is nil.
func OrDefault(l *log.Logger) *log.Logger {
	if l == nil {
		return defaultLogger
	}
	return l
}
