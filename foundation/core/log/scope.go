// File: scope.go
// Title: Method Scope
// Description: A scoped timing log: opening a scope logs "Entering <method>",
//              ending it logs "Exiting <method> (Elapsed: <n>ms)" at the same
//              level. Both entries carry a shared scope_id so they can be paired
//              in aggregated output. End is meant to be deferred.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package log

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/quickx/foundation/core/errors"
)

// Sink is the minimal capability a scope needs: accept a leveled message
// with named values. *Logger implements it.
type Sink interface {
	Log(level Level, message string, fields Fields)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(level Level, message string, fields Fields)

// Log implements Sink
func (f SinkFunc) Log(level Level, message string, fields Fields) {
	f(level, message, fields)
}

// Field names written by method scopes
const (
	FieldMethod    = "method"
	FieldScopeID   = "scope_id"
	FieldElapsedMS = "elapsed_ms"
)

// MethodScope is an open timing scope. The zero value is not usable; create
// one with BeginMethodScope.
type MethodScope struct {
	sink    Sink
	method  string
	level   Level
	id      string
	start   time.Time
	once    sync.Once
	elapsed time.Duration
}

// BeginMethodScope logs the entry message and returns the open scope. The
// level defaults to LevelInfo.
//
//	scope, err := log.BeginMethodScope(logger, "ImportOrders")
//	if err != nil {
//		return err
//	}
//	defer scope.End()
func BeginMethodScope(sink Sink, method string, level ...Level) (*MethodScope, error) {
	if sink == nil {
		return nil, errors.LogNilSink("BeginMethodScope")
	}
	if method == "" {
		return nil, errors.LogEmptyMethod("BeginMethodScope")
	}

	lvl := DefaultLevel()
	if len(level) > 0 {
		lvl = level[0]
	}
	if !lvl.valid() {
		return nil, errors.OutOfRange(errors.ModuleLog, "BeginMethodScope", "level", int(lvl), "a defined level")
	}

	scope := &MethodScope{
		sink:   sink,
		method: method,
		level:  lvl,
		id:     uuid.NewString(),
	}
	sink.Log(lvl, "Entering "+method, Fields{
		FieldMethod:  method,
		FieldScopeID: scope.id,
	})
	scope.start = time.Now()
	return scope, nil
}

// End logs the exit message with the elapsed time and returns it. Only the
// first call logs; later calls return the recorded duration.
func (s *MethodScope) End() time.Duration {
	s.once.Do(func() {
		s.elapsed = time.Since(s.start)
		ms := s.elapsed.Milliseconds()
		s.sink.Log(s.level, fmt.Sprintf("Exiting %s (Elapsed: %dms)", s.method, ms), Fields{
			FieldMethod:    s.method,
			FieldScopeID:   s.id,
			FieldElapsedMS: ms,
		})
	})
	return s.elapsed
}

// Method returns the scoped method name
func (s *MethodScope) Method() string {
	return s.method
}

// Level returns the level both entries are logged at
func (s *MethodScope) Level() Level {
	return s.level
}

// ID returns the identifier shared by the entry and exit messages
func (s *MethodScope) ID() string {
	return s.id
}

// WithMethodScope runs fn inside a method scope. The exit entry is written
// before fn's error is returned and also when fn panics.
func WithMethodScope(sink Sink, method string, level Level, fn func() error) error {
	if fn == nil {
		return errors.RequiredArgument(errors.ModuleLog, "WithMethodScope", "fn")
	}
	scope, err := BeginMethodScope(sink, method, level)
	if err != nil {
		return err
	}
	defer scope.End()
	return fn()
}
