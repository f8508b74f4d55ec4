package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoggerJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})

	logger.WithComponent("store").With("diary_id", 3).
		Warn(context.Background(), errors.New("boom"), "reload failed", "path", "data.yml")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "reload failed", record["msg"])
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "store", record["component"])
	assert.Equal(t, "boom", record["error"])
	assert.Equal(t, "data.yml", record["path"])
	assert.EqualValues(t, 3, record["diary_id"])
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelWarn, Output: &buf})

	logger.Debug(context.Background(), "hidden debug")
	logger.Info(context.Background(), "hidden info")
	logger.Warn(context.Background(), nil, "shown warn")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warn")
}

func TestLoggerOddFieldsIgnored(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelInfo, Output: &buf})

	logger.Info(context.Background(), "odd", "key")
	assert.Equal(t, 1, strings.Count(buf.String(), "msg=odd"))
	assert.NotContains(t, buf.String(), "key=")
}

func TestPerfLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Output: &buf})

	op := StartOperation(logger, "render")
	op.End(context.Background())
	assert.Contains(t, buf.String(), "operation=render")
	assert.Contains(t, buf.String(), "duration_ms=")

	buf.Reset()
	StartOperation(logger, "render").EndWithError(context.Background(), errors.New("bad"))
	assert.Contains(t, buf.String(), "Operation failed")
	assert.Contains(t, buf.String(), "error=bad")
}
