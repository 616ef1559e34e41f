// Package logger provides slog attribute helpers and a constructor for the
// client's structured logger.
//
// Attribute helpers use the empty Attr pattern for nil safety, so callers can
// write log.Info("msg", logger.Error(err)) without explicit nil checks.
package logger
