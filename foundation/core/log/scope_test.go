// File: scope_test.go
// Title: Method Scope Tests
// Description: Entry/exit pairing, level handling and release on every exit
//              path.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13

package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/quickx/foundation/core/error"
)

type record struct {
	level   Level
	message string
	fields  Fields
}

type recordingSink struct {
	records []record
}

func (s *recordingSink) Log(level Level, message string, fields Fields) {
	s.records = append(s.records, record{level, message, fields.Clone()})
}

func TestBeginMethodScope(t *testing.T) {
	sink := &recordingSink{}

	scope, err := BeginMethodScope(sink, "LoadOrders")
	if err != nil {
		t.Fatalf("BeginMethodScope() error = %v", err)
	}
	if len(sink.records) != 1 {
		t.Fatalf("entries after begin = %d, want 1", len(sink.records))
	}

	time.Sleep(2 * time.Millisecond)
	elapsed := scope.End()

	if len(sink.records) != 2 {
		t.Fatalf("entries after end = %d, want 2", len(sink.records))
	}

	entry, exit := sink.records[0], sink.records[1]
	if entry.message != "Entering LoadOrders" {
		t.Errorf("entry message = %q", entry.message)
	}
	if !strings.HasPrefix(exit.message, "Exiting LoadOrders (Elapsed: ") || !strings.HasSuffix(exit.message, "ms)") {
		t.Errorf("exit message = %q", exit.message)
	}
	if entry.level != LevelInfo || exit.level != LevelInfo {
		t.Errorf("levels = %v/%v, want info/info", entry.level, exit.level)
	}
	if entry.fields[FieldScopeID] != exit.fields[FieldScopeID] {
		t.Error("entry and exit should share the scope id")
	}
	if _, err := uuid.Parse(scope.ID()); err != nil {
		t.Errorf("scope id %q is not a UUID: %v", scope.ID(), err)
	}
	if elapsed < 2*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 2ms", elapsed)
	}
	if ms, ok := exit.fields[FieldElapsedMS].(int64); !ok || ms != elapsed.Milliseconds() {
		t.Errorf("elapsed_ms = %v, want %d", exit.fields[FieldElapsedMS], elapsed.Milliseconds())
	}
}

func TestMethodScopeLevels(t *testing.T) {
	for _, level := range AllLevels() {
		t.Run(level.String(), func(t *testing.T) {
			sink := &recordingSink{}
			scope, err := BeginMethodScope(sink, "Work", level)
			if err != nil {
				t.Fatalf("BeginMethodScope() error = %v", err)
			}
			scope.End()

			if scope.Level() != level {
				t.Errorf("Level() = %v, want %v", scope.Level(), level)
			}
			for i, r := range sink.records {
				if r.level != level {
					t.Errorf("record %d level = %v, want %v", i, r.level, level)
				}
			}
		})
	}
}

func TestMethodScopeEndIsIdempotent(t *testing.T) {
	sink := &recordingSink{}
	scope, _ := BeginMethodScope(sink, "Once")

	first := scope.End()
	second := scope.End()

	if len(sink.records) != 2 {
		t.Errorf("records = %d, want 2", len(sink.records))
	}
	if first != second {
		t.Errorf("End() = %v then %v, want the same duration", first, second)
	}
}

func TestMethodScopeArgumentValidation(t *testing.T) {
	testCases := []struct {
		name   string
		sink   Sink
		method string
		level  []Level
	}{
		{"nil sink", nil, "Work", nil},
		{"empty method", &recordingSink{}, "", nil},
		{"undefined level", &recordingSink{}, "Work", []Level{Level(42)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scope, err := BeginMethodScope(tc.sink, tc.method, tc.level...)
			if scope != nil {
				t.Error("scope should be nil on error")
			}
			if !errors.Is(err, mdwerror.ErrInvalidArgument) {
				t.Errorf("error = %v, want invalid argument", err)
			}
			if rs, ok := tc.sink.(*recordingSink); ok && len(rs.records) != 0 {
				t.Error("nothing should be logged before validation passes")
			}
		})
	}
}

func TestWithMethodScopeReleasesOnError(t *testing.T) {
	sink := &recordingSink{}
	boom := errors.New("boom")

	err := WithMethodScope(sink, "Failing", LevelWarn, func() error {
		if len(sink.records) != 1 {
			t.Errorf("inside the scope: records = %d, want 1", len(sink.records))
		}
		return boom
	})

	if !errors.Is(err, boom) {
		t.Errorf("WithMethodScope() error = %v, want %v", err, boom)
	}
	if len(sink.records) != 2 {
		t.Fatalf("records = %d, want 2", len(sink.records))
	}
	if !strings.HasPrefix(sink.records[1].message, "Exiting Failing") {
		t.Errorf("second record = %q, want the exit entry", sink.records[1].message)
	}
}

func TestWithMethodScopeReleasesOnPanic(t *testing.T) {
	sink := &recordingSink{}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic should propagate")
			}
		}()
		_ = WithMethodScope(sink, "Panicking", LevelDebug, func() error {
			panic("bad state")
		})
	}()

	if len(sink.records) != 2 {
		t.Fatalf("records = %d, want 2", len(sink.records))
	}
	if sink.records[1].level != LevelDebug {
		t.Errorf("exit level = %v, want debug", sink.records[1].level)
	}
}

func TestWithMethodScopeNilFunc(t *testing.T) {
	sink := &recordingSink{}
	err := WithMethodScope(sink, "Nothing", LevelInfo, nil)
	if !errors.Is(err, mdwerror.ErrInvalidArgument) {
		t.Errorf("error = %v, want invalid argument", err)
	}
	if len(sink.records) != 0 {
		t.Errorf("records = %d, want 0", len(sink.records))
	}
}

func TestMethodScopeWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf).WithFormat(FormatLogfmt)

	scope, err := BeginMethodScope(logger, "Export", LevelInfo)
	if err != nil {
		t.Fatalf("BeginMethodScope() error = %v", err)
	}
	scope.End()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `message="Entering Export"`) {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], `message="Exiting Export (Elapsed: `) {
		t.Errorf("second line = %q", lines[1])
	}
	if !strings.Contains(lines[1], `scope_id="`+scope.ID()+`"`) {
		t.Errorf("second line lacks scope id: %q", lines[1])
	}
}

func TestMethodScopeFilteredLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf).WithLevel(LevelWarn)

	scope, err := BeginMethodScope(logger, "Quiet", LevelDebug)
	if err != nil {
		t.Fatalf("BeginMethodScope() error = %v", err)
	}
	scope.End()

	if buf.Len() != 0 {
		t.Errorf("debug scope under warn logger wrote %q", buf.String())
	}
}

func TestSinkFunc(t *testing.T) {
	var got []string
	sink := SinkFunc(func(level Level, message string, fields Fields) {
		got = append(got, level.ShortString()+" "+message)
	})
	_ = WithMethodScope(sink, "F", LevelError, func() error { return nil })

	if len(got) != 2 || got[0] != "ERR Entering F" {
		t.Errorf("SinkFunc records = %v", got)
	}
}
