//go:build unit
// +build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/MGTheTrain/aes-workbench/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(config.LogLevelInfo, &buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestConsoleLogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(config.LogLevelDebug, &buf)

	logger.Debug("debug message")
	assert.Contains(t, buf.String(), "debug message")
}

func TestNewConsoleLogger(t *testing.T) {
	for _, output := range []string{"", config.LogOutputStdout, config.LogOutputStderr} {
		logger := NewConsoleLogger(config.LogLevelInfo, output)
		require.NotNil(t, logger)

		require.NotPanics(t, func() {
			logger.Info("test")
			logger.Warn("test")
			logger.Error("test")
		})
	}
}

func TestConsoleLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(config.LogLevelInfo, &buf)

	assert.PanicsWithValue(t, "boom", func() {
		logger.Panic("boom")
	})
	assert.Contains(t, buf.String(), "boom")
}
