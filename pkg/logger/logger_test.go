package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger := New(Config{})
	assert.NotNil(t, logger)
}

func TestLoggerOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Environment: "production", ServiceName: "shici-test"}, zapcore.AddSync(&buf))

	logger.Info("poems reshaped", zap.Int("count", 3))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "poems reshaped", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "shici-test", entry["service"])
	assert.Equal(t, "production", entry["environment"])
	assert.Equal(t, float64(3), entry["count"])
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, getLogLevel(tt.level).Level())
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Environment: "production", LogLevel: "warn"}, zapcore.AddSync(&buf))

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
