package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "lockroi.log")

	l, err := New(&Config{LogFile: logFile, MaxSize: 1, MaxAge: 1, MaxBackups: 1})
	require.NoError(t, err)

	l.Info("table loaded", zap.Int("rows", 3))
	_ = l.Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"table loaded"`)
	assert.Contains(t, string(content), `"rows":3`)
}

func TestNewDebugLevel(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "lockroi.log")

	l, err := New(&Config{LogFile: logFile, Development: true})
	require.NoError(t, err)

	l.Debug("cache invalidated")
	_ = l.Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "cache invalidated")
}

func TestInfoSuppressesDebug(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "lockroi.log")

	l, err := New(&Config{LogFile: logFile})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("visible")
	_ = l.Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden")
	assert.Contains(t, string(content), "visible")
}

func TestWithOperationAddsCorrelationID(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "lockroi.log")

	l, err := New(&Config{LogFile: logFile})
	require.NoError(t, err)

	l.WithOperation("export").Info("curve exported")
	_ = l.Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"operation":"export"`)
	assert.Contains(t, string(content), "correlation_id")
}

func TestLogError(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "lockroi.log")

	l, err := New(&Config{LogFile: logFile})
	require.NoError(t, err)

	l.LogError("reload failed", os.ErrNotExist)
	_ = l.Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "reload failed")
	assert.True(t, strings.Contains(string(content), "file does not exist"))
}

func TestCreatePrettyLogger(t *testing.T) {
	debug, err := CreatePrettyLogger(true)
	require.NoError(t, err)
	assert.True(t, debug.Core().Enabled(zapcore.DebugLevel))

	info, err := CreatePrettyLogger(false)
	require.NoError(t, err)
	assert.False(t, info.Core().Enabled(zapcore.DebugLevel))
}
