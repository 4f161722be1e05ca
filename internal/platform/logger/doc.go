// Package logger configures the process-wide slog JSON logger from the
// server log level and carries request-scoped loggers in a context.
//
// GormLogger sends gorm's SQL trace through the same handler, flagging
// slow queries and skipping record-not-found noise.
package logger
