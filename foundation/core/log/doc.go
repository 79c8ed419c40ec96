// Package log provides structured logging for quickx and its callers.
//
// Package: log
// Title: Structured Logging and Method Scopes
// Description: Leveled structured logger with JSON, text, console and logfmt
//              output, operation timers, and method scopes that emit a paired
//              entry/exit record with the elapsed time. Scopes write to any Sink;
//              *Logger is one, zapsink adapts a *zap.Logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-13 v0.2.0: Sink contract and method scopes
//
// Usage:
//   import qlog "github.com/msto63/quickx/foundation/core/log"
//
//   logger := qlog.New().
//     WithLevel(qlog.LevelDebug).
//     WithFormat(qlog.FormatText).
//     WithField("component", "billing")
//
//   logger.Info("invoice run started", qlog.Field("invoices", 42))
//
//   func closeMonth(logger *qlog.Logger) error {
//     scope, err := qlog.BeginMethodScope(logger, "closeMonth", qlog.LevelDebug)
//     if err != nil {
//       return err
//     }
//     defer scope.End()
//     ...
//   }
package log
