// File: logger.go
// Title: Core Logger Implementation
// Description: Structured leveled logger with persistent context fields,
//              pluggable formatters and optional asynchronous output. Logger
//              satisfies the Sink contract used by method scopes.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-13 v0.2.0: Sink implementation, Close waits for the async worker
// - 2026-10-14 v0.2.1: Caller set directly on the entry

package log

import (
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	mdwerror "github.com/msto63/quickx/foundation/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	contextFields Fields

	enableCaller     bool
	callerSkipFrames int

	async *asyncWriter

	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level            Level
	Format           Format
	Output           io.Writer
	Name             string
	EnableCaller     bool
	CallerSkipFrames int
	AsyncEnabled     bool
	AsyncBufferSize  int
}

type asyncWriter struct {
	buffer    chan []byte
	done      chan struct{}
	closeOnce sync.Once
	output    io.Writer
}

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stdout,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:            config.Level,
		formatter:        GetFormatter(config.Format),
		output:           config.Output,
		name:             config.Name,
		contextFields:    make(Fields),
		enableCaller:     config.EnableCaller,
		callerSkipFrames: config.CallerSkipFrames,
	}

	if logger.output == nil {
		logger.output = os.Stdout
	}

	if config.AsyncEnabled {
		size := config.AsyncBufferSize
		if size <= 0 {
			size = 1000
		}
		logger.async = &asyncWriter{
			buffer: make(chan []byte, size),
			done:   make(chan struct{}),
			output: logger.output,
		}
		go logger.async.run()
	}

	return logger
}

// WithLevel returns a copy with the minimum log level set
func (l *Logger) WithLevel(level Level) *Logger {
	return l.derive(func(c *Logger) { c.level = level })
}

// WithFormat returns a copy with the given output format
func (l *Logger) WithFormat(format Format) *Logger {
	return l.derive(func(c *Logger) { c.formatter = GetFormatter(format) })
}

// WithFormatter returns a copy using a custom formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	return l.derive(func(c *Logger) { c.formatter = formatter })
}

// WithOutput returns a copy writing to output. The copy is synchronous.
func (l *Logger) WithOutput(output io.Writer) *Logger {
	return l.derive(func(c *Logger) {
		c.output = output
		c.async = nil
	})
}

// WithName returns a copy with the logger name set
func (l *Logger) WithName(name string) *Logger {
	return l.derive(func(c *Logger) { c.name = name })
}

// WithField returns a copy that adds the field to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.derive(func(c *Logger) { c.contextFields[key] = value })
}

// WithFields returns a copy that adds the fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.derive(func(c *Logger) {
		for k, v := range fields {
			c.contextFields[k] = v
		}
	})
}

// WithCaller returns a copy that records caller information
func (l *Logger) WithCaller(skip int) *Logger {
	return l.derive(func(c *Logger) {
		c.enableCaller = true
		c.callerSkipFrames = skip
	})
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs a fatal level message and exits the program
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	l.Close()
	os.Exit(1)
}

// Audit logs an audit level message (always logged regardless of level)
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(LevelAudit, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// Log implements Sink
func (l *Logger) Log(level Level, message string, fields Fields) {
	l.log(level, message, nil, fields)
}

// LogError logs an error at a level derived from its severity. Structured
// errors contribute their code, operation and details as fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	qErr, ok := err.(*mdwerror.Error)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     qErr.Code(),
		"error_severity": qErr.Severity().String(),
	}
	if op := qErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range qErr.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch qErr.Severity() {
	case mdwerror.SeverityLow:
		level = LevelInfo
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, err.Error(), err, fields)
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// SetLevel changes the log level in place
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// Close flushes buffered entries of an async logger and stops its worker.
// It is safe to call more than once and a no-op for synchronous loggers.
func (l *Logger) Close() {
	if l.async != nil {
		l.async.close()
	}
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()
	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Error = err

	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			entry.Fields[k] = v
		}
	}

	if l.enableCaller {
		if function, file, line, ok := l.getCaller(); ok {
			entry.Caller = &CallerInfo{Function: function, File: file, Line: line}
		}
	}

	formatter, output, async := l.formatter, l.output, l.async
	l.mutex.RUnlock()

	formatted, formatErr := formatter.Format(entry)
	if formatErr != nil {
		return
	}

	if async != nil && async.enqueue(formatted) {
		return
	}
	_, _ = output.Write(formatted)
}

// getCaller skips getCaller, log, the public method and its caller
func (l *Logger) getCaller() (function, file string, line int, ok bool) {
	pc, file, line, ok := runtime.Caller(3 + l.callerSkipFrames)
	if !ok {
		return "", "", 0, false
	}

	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}
	if idx := strings.LastIndex(file, "/"); idx != -1 {
		file = file[idx+1:]
	}
	return function, file, line, true
}

func (l *Logger) derive(mutate func(*Logger)) *Logger {
	l.mutex.RLock()
	clone := &Logger{
		level:            l.level,
		formatter:        l.formatter,
		output:           l.output,
		name:             l.name,
		enableCaller:     l.enableCaller,
		callerSkipFrames: l.callerSkipFrames,
		async:            l.async,
		contextFields:    l.contextFields.Clone(),
	}
	l.mutex.RUnlock()

	if clone.contextFields == nil {
		clone.contextFields = make(Fields)
	}
	mutate(clone)
	return clone
}

// enqueue reports false when the buffer is full or closed; the caller then
// writes synchronously.
func (a *asyncWriter) enqueue(data []byte) (queued bool) {
	defer func() {
		if recover() != nil {
			queued = false
		}
	}()
	select {
	case a.buffer <- data:
		return true
	default:
		return false
	}
}

func (a *asyncWriter) run() {
	defer close(a.done)
	for data := range a.buffer {
		_, _ = a.output.Write(data)
	}
}

func (a *asyncWriter) close() {
	a.closeOnce.Do(func() {
		close(a.buffer)
	})
	<-a.done
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a warning message using the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
