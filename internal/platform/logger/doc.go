// Package logger provides structured logging for the application.
//
// It uses the standard library log/slog package to produce JSON logs with a
// configurable level.
package logger
