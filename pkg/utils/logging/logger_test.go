package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewTeeLogger_LevelsPerSink(t *testing.T) {
	var console, file bytes.Buffer
	logger := NewTeeLogger(zapcore.AddSync(&console), zapcore.AddSync(&file))

	logger.Debug("debug only", zap.String("key", "value"))
	logger.Info("both sinks")
	require.NoError(t, logger.Sync())

	assert.NotContains(t, console.String(), "debug only")
	assert.Contains(t, console.String(), "both sinks")

	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	require.Len(t, lines, 2)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "debug only", record["msg"])
	assert.Equal(t, "value", record["key"])
	assert.Contains(t, record, "timestamp")
}

func TestInitLogger_CreatesLogFile(t *testing.T) {
	logsDir := filepath.Join(t.TempDir(), "logs")

	logger, err := InitLogger("test", logsDir)
	require.NoError(t, err)
	logger.Debug("hello")
	_ = logger.Sync()

	entries, err := os.ReadDir(logsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "test_"))
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".log"))
}
