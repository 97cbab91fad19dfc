// Package cli implements the codedrift command-line interface.
//
// Every command logs through log/slog. The handler is a charmbracelet/log
// logger: human-readable text for the interactive hosts, JSON for headless
// runs whose output is meant for machines. --verbose (-v) enables debug level.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogger creates a charm logger writing to w at the given level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level, json bool) *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	}
	if json {
		opts.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, opts)
}

// installLogger makes a charm logger the slog default and returns it.
func installLogger(w io.Writer, verbose, json bool) *slog.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := slog.New(newLogger(w, level, json))
	slog.SetDefault(logger)
	return logger
}
