package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Mode)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Transcript.CRC)
	assert.False(t, cfg.Parse.Strict)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := "mode: full\nlog:\n  level: debug\ntranscript:\n  crc: false\nparse:\n  strict: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stylecode.yaml"), []byte(yaml), 0o644))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "full", cfg.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Transcript.CRC)
	assert.True(t, cfg.Parse.Strict)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("STYLECODE_MODE", "none")
	t.Setenv("STYLECODE_PARSE_STRICT", "true")

	cfg, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.Mode)
	assert.True(t, cfg.Parse.Strict)
}

func TestLoadConfig_BadMode(t *testing.T) {
	t.Setenv("STYLECODE_MODE", "loud")
	_, err := loadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseLevel("chatty")
	assert.Error(t, err)
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger("warn", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
