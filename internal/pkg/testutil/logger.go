package testutil

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/MGTheTrain/aes-workbench/internal/pkg/config"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		Output:   config.LogOutputStderr,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// RecordingLogger collects every message so tests can assert on what was logged.
type RecordingLogger struct {
	buf bytes.Buffer
}

func (l *RecordingLogger) record(level string, args ...interface{}) {
	l.buf.WriteString(level)
	l.buf.WriteString(" ")
	l.buf.WriteString(fmt.Sprint(args...))
	l.buf.WriteString("\n")
}

// Debug records a debug message.
func (l *RecordingLogger) Debug(args ...interface{}) { l.record("DEBUG", args...) }

// Info records an informational message.
func (l *RecordingLogger) Info(args ...interface{}) { l.record("INFO", args...) }

// Warn records a warning message.
func (l *RecordingLogger) Warn(args ...interface{}) { l.record("WARN", args...) }

// Error records an error message.
func (l *RecordingLogger) Error(args ...interface{}) { l.record("ERROR", args...) }

// Fatal records a fatal message without exiting.
func (l *RecordingLogger) Fatal(args ...interface{}) { l.record("FATAL", args...) }

// Panic records a panic message without panicking.
func (l *RecordingLogger) Panic(args ...interface{}) { l.record("PANIC", args...) }

// String returns everything recorded so far.
func (l *RecordingLogger) String() string {
	return l.buf.String()
}
