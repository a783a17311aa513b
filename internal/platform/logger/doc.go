// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured
// logging with configurable log levels. Two output formats are supported: JSON
// for production log pipelines and colorized text (via tint) for local use.
// Request-scoped loggers travel through context.Context.
package logger
