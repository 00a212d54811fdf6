package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo // Default to INFO for unknown
	}
}

// Logger is the per-invocation log handle a tool owns. It writes either to a
// log file or to stdout, filters below its minimum level, and tags every
// entry with the tool's name. The invoking tool creates it once at startup
// and calls Close before exiting; there is no process-wide registry.
type Logger struct {
	name    string
	slogger *slog.Logger
	file    *os.File
}

// New creates the logger for the named tool with minimum severity Info.
// When logFile is non-empty the sink is that file, created or truncated;
// otherwise entries go to stdout. The caller owns the handle and releases
// the file sink with Close.
func New(name, logFile string) (*Logger, error) {
	if logFile == "" {
		return NewWithWriter(name, LevelInfo, os.Stdout), nil
	}

	file, err := os.Create(logFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logFile, err)
	}

	logger := NewWithWriter(name, LevelInfo, file)
	logger.file = file
	return logger, nil
}

// NewWithWriter creates a logger for the named tool that writes to an
// arbitrary sink. Useful for tests and for tools that manage their own
// output streams.
func NewWithWriter(name string, level LogLevel, output io.Writer) *Logger {
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: level.SlogLevel(),
	})
	return &Logger{
		name:    name,
		slogger: slog.New(handler),
	}
}

// Name returns the tool name the logger was created for.
func (l *Logger) Name() string {
	return l.name
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, nil, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, nil, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, nil, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(err error, format string, args ...interface{}) {
	l.log(LevelError, err, format, args...)
}

// Close releases the file sink, if the logger writes to one. Loggers backed
// by stdout or a caller-provided writer close nothing.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) log(level LogLevel, err error, format string, args ...interface{}) {
	if l == nil || l.slogger == nil {
		return
	}
	if !l.slogger.Enabled(context.Background(), level.SlogLevel()) {
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	attrs := []slog.Attr{slog.String("tool", l.name)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.slogger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}
