// Package logging provides fbcheck's logger factory built on charmbracelet/log.
//
// All log output goes to stderr; stdout carries the check progress lines and
// the summary report.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Level aliases so callers do not import charmbracelet/log directly.
const (
	LevelDebug = log.DebugLevel
	LevelInfo  = log.InfoLevel
	LevelWarn  = log.WarnLevel
	LevelError = log.ErrorLevel
)

// Setup configures the global logging defaults. Call once before New.
// If both verbose and quiet are set, quiet wins.
func Setup(verbose, quiet, jsonFormat bool) {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.ErrorLevel
	}

	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if jsonFormat {
		log.SetFormatter(log.JSONFormatter)
	} else {
		log.SetFormatter(log.TextFormatter)
	}
}

// New creates a logger with the given component prefix. Child loggers copy
// the default logger's settings at creation time.
func New(component string) *log.Logger {
	return log.WithPrefix(component)
}

// SetOutput overrides the output writer for the default logger (tests).
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}
