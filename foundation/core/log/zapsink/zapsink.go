// File: zapsink.go
// Title: Zap Sink Adapter
// Description: Adapts a *zap.Logger to the log.Sink contract so method scopes
//              and timers can write into an application's existing zap setup.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

// Package zapsink writes quickx log records to go.uber.org/zap.
package zapsink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	qlog "github.com/msto63/quickx/foundation/core/log"
)

// Sink implements qlog.Sink on top of a zap logger. A nil *Sink or a Sink
// built from a nil logger discards everything.
type Sink struct {
	logger *zap.Logger
}

var _ qlog.Sink = (*Sink)(nil)

// New wraps logger
func New(logger *zap.Logger) *Sink {
	return &Sink{logger: logger}
}

func (s *Sink) must() *zap.Logger {
	if s == nil || s.logger == nil {
		return zap.NewNop()
	}
	return s.logger
}

// Log implements qlog.Sink. Fields are passed in sorted key order.
func (s *Sink) Log(level qlog.Level, message string, fields qlog.Fields) {
	ce := s.must().Check(LevelToZap(level), message)
	if ce == nil {
		return
	}

	zapFields := make([]zap.Field, 0, len(fields)+1)
	for _, k := range fields.Keys() {
		zapFields = append(zapFields, zap.Any(k, fields[k]))
	}
	if level == qlog.LevelAudit {
		zapFields = append(zapFields, zap.Bool("audit", true))
	}
	ce.Write(zapFields...)
}

// Raw returns the underlying zap logger
func (s *Sink) Raw() *zap.Logger {
	return s.must()
}

// Sync flushes buffered zap output
func (s *Sink) Sync() error {
	return s.must().Sync()
}

// LevelToZap maps a quickx level to zap. Trace folds into debug; fatal maps
// to error because a sink must never terminate the process; audit is logged
// at info and tagged.
func LevelToZap(level qlog.Level) zapcore.Level {
	switch level {
	case qlog.LevelTrace, qlog.LevelDebug:
		return zapcore.DebugLevel
	case qlog.LevelInfo, qlog.LevelAudit:
		return zapcore.InfoLevel
	case qlog.LevelWarn:
		return zapcore.WarnLevel
	case qlog.LevelError, qlog.LevelFatal:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
