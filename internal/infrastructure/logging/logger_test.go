package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshaffer321/komisi/internal/infrastructure/config"
)

func TestMavenHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, config.LoggingConfig{Level: "info"}).With("system", "api")

	logger.Info("commission calculated", "total", 100, "name", "Dewan Putra")

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "[INFO] [api] ["), line)
	assert.Contains(t, line, " commission calculated")
	assert.Contains(t, line, "total=100")
	assert.Contains(t, line, `name="Dewan Putra"`)
	assert.NotContains(t, line, "system=")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestMavenHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, config.LoggingConfig{Level: "warn"})

	logger.Info("hidden")
	logger.Debug("hidden too")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[WARN]")
}

func TestMavenHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewMavenHandler(&buf, nil))

	logger.WithGroup("request").With("id", "abc").Info("done", "status", 200)
	logger.Info("nested", slog.Group("split", "count", 3))

	out := buf.String()
	assert.Contains(t, out, "request.id=abc")
	assert.Contains(t, out, "request.status=200")
	assert.Contains(t, out, "split.count=3")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, config.LoggingConfig{Level: "debug", Format: "json"})

	logger.Debug("hello", "n", 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, float64(1), entry["n"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}
