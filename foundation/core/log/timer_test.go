// File: timer_test.go
// Title: Timer Tests
// Description: Tests for operation timing through a sink.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-13

package log

import (
	"errors"
	"testing"
	"time"
)

func TestTimerStop(t *testing.T) {
	sink := &recordingSink{}
	timer := NewTimer(sink, "reindex").WithLevel(LevelInfo).WithField("rows", 10)

	time.Sleep(time.Millisecond)
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Errorf("Stop() = %v, want > 0", elapsed)
	}
	if timer.IsRunning() {
		t.Error("timer should be stopped")
	}
	if len(sink.records) != 1 {
		t.Fatalf("records = %d, want 1", len(sink.records))
	}
	r := sink.records[0]
	if r.message != "reindex completed" || r.level != LevelInfo {
		t.Errorf("record = %q at %v", r.message, r.level)
	}
	if r.fields["rows"] != 10 || r.fields["operation"] != "reindex" {
		t.Errorf("fields = %v", r.fields)
	}

	if again := timer.Stop(); again != 0 {
		t.Errorf("second Stop() = %v, want 0", again)
	}
	if len(sink.records) != 1 {
		t.Error("second Stop() should not log")
	}
}

func TestTimerStopWithError(t *testing.T) {
	sink := &recordingSink{}
	NewTimer(sink, "sync").StopWithError(errors.New("timeout"))

	r := sink.records[0]
	if r.level != LevelError || r.message != "sync failed" {
		t.Errorf("record = %q at %v", r.message, r.level)
	}
	if r.fields["success"] != false || r.fields["error"] != "timeout" {
		t.Errorf("fields = %v", r.fields)
	}
}

func TestTimerCancel(t *testing.T) {
	sink := &recordingSink{}
	timer := NewTimer(sink, "skip")
	timer.Cancel()
	timer.Stop()

	if len(sink.records) != 0 {
		t.Errorf("records = %d, want 0", len(sink.records))
	}
}

func TestLoggerStartTimer(t *testing.T) {
	timer := New().WithLevel(LevelError).StartTimer("quiet")
	if timer.sink == nil {
		t.Fatal("StartTimer should use the logger as sink")
	}
	timer.Stop()
}
