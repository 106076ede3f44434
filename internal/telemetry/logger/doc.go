// Package logger provides structured logging for the hashtag tools.
//
// This package wraps log/slog:
//
//   - logger.go: Logger interface, configuration and the default logger
//   - context.go: Context-aware logging with run IDs
//   - truncate.go: Shortening of scanned text in log attributes
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering with runtime adjustment
//   - Long input lines are cut before they reach the log
package logger
