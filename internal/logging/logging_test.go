package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("TRACE"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("ERROR"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("anything"))
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	cfg := DefaultConfig(false)
	assert.Equal(t, zapcore.InfoLevel, cfg.Level.Level())
	assert.Equal(t, "console", cfg.Encoding)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)

	cfg = DefaultConfig(true)
	assert.Equal(t, zapcore.DebugLevel, cfg.Level.Level())

	t.Setenv(EnvLogLevel, "error")
	cfg = DefaultConfig(true)
	assert.Equal(t, zapcore.ErrorLevel, cfg.Level.Level())
}

func TestNew(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	logger, err := New(false)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewWithWriter(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	var buf bytes.Buffer
	logger := NewWithWriter(&buf, false)
	logger.Debug("hidden")
	logger.Info("generated passwords", zap.Int("count", 3))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "generated passwords")
	assert.Contains(t, out, "count")

	buf.Reset()
	verbose := NewWithWriter(&buf, true)
	verbose.Debug("alphabet built", zap.Int("size", 88))
	assert.Contains(t, buf.String(), "alphabet built")
}
