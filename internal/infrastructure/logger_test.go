package infrastructure

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamrycli/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("anything else"))
}

func TestInitializeLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	logger, closer, err := InitializeLogger(config.LoggingConfig{
		Level:    "debug",
		Output:   "file",
		FilePath: path,
	})
	require.NoError(t, err)
	require.NotNil(t, closer)
	defer closer.Close()

	logger.Info("probe message", slog.String("key", "value"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "probe message")
	assert.Contains(t, string(content), `"key":"value"`)
}

func TestInitializeLogger_ConsoleOutput(t *testing.T) {
	logger, closer, err := InitializeLogger(config.LoggingConfig{Level: "info", Output: "console"})
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.NotNil(t, logger)
}
