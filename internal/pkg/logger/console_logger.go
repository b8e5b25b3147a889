package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/MGTheTrain/aes-workbench/internal/pkg/config"
)

// ConsoleLogger is an implementation of Logger that logs to the console.
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a new console logger with the specified log level.
// Output goes to stdout or stderr as selected by output; the CLI logs to stderr
// so that command results on stdout stay pipeable.
func NewConsoleLogger(level, output string) Logger {
	return newConsoleLogger(level, consoleWriter(output))
}

func newConsoleLogger(level string, w io.Writer) Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	handler := slog.NewTextHandler(w, opts)
	return &ConsoleLogger{logger: slog.New(handler)}
}

func consoleWriter(output string) io.Writer {
	if output == config.LogOutputStderr {
		return os.Stderr
	}
	return os.Stdout
}

// Debug logs a debug message to the console.
func (l *ConsoleLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

// Info logs an informational message to the console.
func (l *ConsoleLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message to the console.
func (l *ConsoleLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message to the console.
func (l *ConsoleLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs a fatal message and exits.
func (l *ConsoleLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *ConsoleLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}
