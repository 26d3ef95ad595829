package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("usecase", "test message")

	content, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[usecase]")
	assert.Contains(t, string(content), "test message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelWarn) // Only warn and above
	defer func() { _ = logger.Close() }()

	logger.Debug("store", "debug message")
	logger.Info("store", "info message")
	logger.Warn("store", "warn message")
	logger.Error("store", "error message")

	content, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
	assert.Contains(t, string(content), "error message")
}

func TestLogger_DisabledWhenEmptyDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Should not panic and should not create anything
	logger.Info("usecase", "test message")
	logger.Debug("usecase", "debug message")
	logger.Warn("usecase", "warn message")
	logger.Error("usecase", "error message")
}

func TestLogger_LogFormat(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("usecase", `request planned: "Build Mobile App"`)

	content, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)

	// Verify format: [timestamp] [INFO] [usecase] message
	line := lines[0]
	assert.Contains(t, line, "[INFO]")
	assert.Contains(t, line, "[usecase]")
	assert.Contains(t, line, `request planned: "Build Mobile App"`)
}

func TestLogger_AppendsAcrossWrites(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("subtask", "first entry")
	logger.Info("subtask", "second entry")

	content, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 2)
}

func TestLogger_CreatesLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()
	logger.Info("usecase", "test message")

	stat, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestLogger_Close(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)

	logger.Info("usecase", "test message")

	err := logger.Close()
	assert.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, LogFileName))

	// Close again is a no-op
	assert.NoError(t, logger.Close())
}
