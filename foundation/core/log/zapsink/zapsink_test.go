package zapsink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	qlog "github.com/msto63/quickx/foundation/core/log"
)

func newObserved(level zapcore.Level) (*Sink, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return New(zap.New(core)), logs
}

func TestSinkWritesMethodScope(t *testing.T) {
	sink, logs := newObserved(zapcore.DebugLevel)

	scope, err := qlog.BeginMethodScope(sink, "Reconcile", qlog.LevelWarn)
	require.NoError(t, err)
	scope.End()

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "Entering Reconcile", entries[0].Message)
	assert.Contains(t, entries[1].Message, "Exiting Reconcile (Elapsed: ")
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)

	ctx0 := entries[0].ContextMap()
	ctx1 := entries[1].ContextMap()
	assert.Equal(t, "Reconcile", ctx0[qlog.FieldMethod])
	assert.Equal(t, scope.ID(), ctx0[qlog.FieldScopeID])
	assert.Equal(t, ctx0[qlog.FieldScopeID], ctx1[qlog.FieldScopeID])
	assert.Contains(t, ctx1, qlog.FieldElapsedMS)
}

func TestSinkRespectsZapLevel(t *testing.T) {
	sink, logs := newObserved(zapcore.InfoLevel)

	sink.Log(qlog.LevelDebug, "hidden", nil)
	sink.Log(qlog.LevelTrace, "hidden too", nil)
	sink.Log(qlog.LevelInfo, "shown", qlog.Fields{"k": "v"})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
	assert.Equal(t, "v", logs.All()[0].ContextMap()["k"])
}

func TestSinkAuditTag(t *testing.T) {
	sink, logs := newObserved(zapcore.InfoLevel)
	sink.Log(qlog.LevelAudit, "settings changed", nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, true, logs.All()[0].ContextMap()["audit"])
}

func TestLevelToZap(t *testing.T) {
	cases := map[qlog.Level]zapcore.Level{
		qlog.LevelTrace: zapcore.DebugLevel,
		qlog.LevelDebug: zapcore.DebugLevel,
		qlog.LevelInfo:  zapcore.InfoLevel,
		qlog.LevelWarn:  zapcore.WarnLevel,
		qlog.LevelError: zapcore.ErrorLevel,
		qlog.LevelFatal: zapcore.ErrorLevel,
		qlog.LevelAudit: zapcore.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, LevelToZap(in), in.String())
	}
}

func TestNilSinkDiscards(t *testing.T) {
	var sink *Sink
	assert.NotPanics(t, func() {
		sink.Log(qlog.LevelError, "nowhere", nil)
	})
	assert.NotNil(t, New(nil).Raw())
}
