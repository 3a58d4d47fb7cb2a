// Package logger provides structured logging for katasync.
//
// It wraps zerolog behind a small Logger interface with:
//   - Level filtering (debug, info, warn, error, disabled)
//   - Structured fields via WithField / WithFields / WithError
//   - Readable console output on a terminal, JSON lines when piped
//   - An optional log file written alongside the console
//   - A global logger for the CLI and injectable loggers for packages
//
// Basic usage:
//
//	err := logger.Initialize(&cfg.Logging)
//	logger.WithField("level", "4kyu").Info("Added level directory")
//
// Packages take a Logger in their constructors. Tests pass NewNopLogger or
// NewTestLogger and inspect the captured messages.
package logger
