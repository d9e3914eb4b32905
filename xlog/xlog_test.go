package xlog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type bufferSyncer struct {
	bytes.Buffer
}

func (b *bufferSyncer) Sync() error { return nil }

func TestConsoleLoggerOutput(t *testing.T) {
	ws := &bufferSyncer{}
	logger := NewLoggerWithSyncer("guardTest", ws, zapcore.DebugLevel)

	logger.Debug("dbg line", zap.Int("round", 1))
	logger.Info("info line")
	logger.Error(assert.AnError, "boom")
	require.NoError(t, logger.Sync())

	out := ws.String()
	assert.Contains(t, out, "dbg line")
	assert.Contains(t, out, "guardTest")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, assert.AnError.Error())
}

func TestDynamicLevel(t *testing.T) {
	ws := &bufferSyncer{}
	logger := NewLoggerWithSyncer("lvl", ws, zapcore.InfoLevel)
	logger.Debug("hidden")
	assert.NotContains(t, ws.String(), "hidden")
	assert.Equal(t, "info", logger.Level())

	logger.IncreaseLogLevel(zapcore.DebugLevel)
	logger.Debug("visible")
	assert.Contains(t, ws.String(), "visible")
	assert.Equal(t, "debug", logger.Level())
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvKey, "warn")
	assert.Equal(t, zapcore.WarnLevel, levelFromEnv())
	t.Setenv(LogLevelEnvKey, "not-a-level")
	assert.Equal(t, zapcore.InfoLevel, levelFromEnv())
	t.Setenv(LogLevelEnvKey, "")
	assert.Equal(t, zapcore.InfoLevel, levelFromEnv())
}
