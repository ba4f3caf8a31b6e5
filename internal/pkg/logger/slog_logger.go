package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"
	"github.com/natefinch/lumberjack"
)

// SlogLogger is the slog backed implementation of Logger used for both console and file sinks
type SlogLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a logger writing to stdout in text or JSON format
func NewConsoleLogger(level, format string) Logger {
	return newSlogLogger(os.Stdout, level, format)
}

// NewFileLogger creates a JSON logger writing to a size rotated file
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	return newSlogLogger(writer, level, config.LogFormatJSON)
}

func newSlogLogger(w io.Writer, level, format string) *SlogLogger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &SlogLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *SlogLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *SlogLogger) Info(msg string, args ...interface{}) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *SlogLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *SlogLogger) Error(msg string, args ...interface{}) {
	l.logger.Error(msg, args...)
}

// Fatal logs an error message and exits.
func (l *SlogLogger) Fatal(msg string, args ...interface{}) {
	l.logger.Error(msg, args...)
	os.Exit(1)
}

// Panic logs an error message and panics.
func (l *SlogLogger) Panic(msg string, args ...interface{}) {
	l.logger.Error(msg, args...)
	panic(msg)
}

// With returns a logger that adds the given attributes to every record
func (l *SlogLogger) With(args ...interface{}) Logger {
	return &SlogLogger{logger: l.logger.With(args...)}
}
