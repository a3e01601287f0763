package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/jroosing/zooapi/internal/config"
	"github.com/jroosing/zooapi/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Logger Configuration Tests
// =============================================================================

func TestConfigure_LevelFiltering(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
		warnSeen  bool
	}{
		{"DEBUG", true, true, true},
		{"debug", true, true, true},
		{"INFO", false, true, true},
		{"WARNING", false, false, true},
		{"ERROR", false, false, false},
		{"INVALID", false, true, true},
		{"", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.Configure(logging.Config{Level: tt.level, Output: &buf})

			logger.Debug("debug-line")
			logger.Info("info-line")
			logger.Warn("warn-line")

			out := buf.String()
			assert.Equal(t, tt.debugSeen, bytes.Contains([]byte(out), []byte("debug-line")))
			assert.Equal(t, tt.infoSeen, bytes.Contains([]byte(out), []byte("info-line")))
			assert.Equal(t, tt.warnSeen, bytes.Contains([]byte(out), []byte("warn-line")))
		})
	}
}

func TestConfigure_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{
		Level:            "INFO",
		Structured:       true,
		StructuredFormat: "JSON",
		IncludePID:       true,
		ExtraFields:      map[string]string{"app": "zooapi"},
		Output:           &buf,
	})

	logger.Info("hello", "animals", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "zooapi", entry["app"])
	assert.Equal(t, float64(3), entry["animals"])
	assert.Contains(t, entry, "pid")
}

func TestConfigure_StructuredText(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{Structured: true, StructuredFormat: "keyvalue", Output: &buf})

	logger.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestConfigure_SetsDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{Output: &buf})

	assert.Same(t, logger, slog.Default())
}

func TestFromConfig(t *testing.T) {
	cfg := logging.FromConfig(config.LoggingConfig{
		Level:            "DEBUG",
		Structured:       true,
		StructuredFormat: "json",
		IncludePID:       true,
		ExtraFields:      map[string]string{"k": "v"},
	})

	assert.Equal(t, "DEBUG", cfg.Level)
	assert.True(t, cfg.Structured)
	assert.Equal(t, "json", cfg.StructuredFormat)
	assert.True(t, cfg.IncludePID)
	assert.Equal(t, "v", cfg.ExtraFields["k"])
	assert.Nil(t, cfg.Output)
}

// =============================================================================
// Context Tests
// =============================================================================

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "abc")

	ctx := logging.WithContext(context.Background(), logger)
	logging.FromContext(ctx).Info("scoped")

	assert.Contains(t, buf.String(), "request_id=abc")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), logging.FromContext(context.Background()))
}
