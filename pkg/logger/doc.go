// Package logger builds the application slog.Logger and provides attribute
// helpers for the domain's common log keys.
package logger
