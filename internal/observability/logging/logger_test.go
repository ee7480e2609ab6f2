package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textdigest/internal/handler/http/requestid"
)

/* ───────── Logger construction ───────── */

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"", "debug", "warn", "invalid"} {
		t.Run("LOG_LEVEL="+level, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", level)
			assert.NotNil(t, NewLogger())
			assert.NotNil(t, NewTextLogger())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "", want: slog.LevelInfo},
		{input: "info", want: slog.LevelInfo},
		{input: "debug", want: slog.LevelDebug},
		{input: " DEBUG ", want: slog.LevelDebug},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		logFunc   func(*slog.Logger)
		wantEmpty bool
	}{
		{name: "debug filtered at info", level: "info", logFunc: func(l *slog.Logger) { l.Debug("m") }, wantEmpty: true},
		{name: "debug kept at debug", level: "debug", logFunc: func(l *slog.Logger) { l.Debug("m") }},
		{name: "info filtered at warn", level: "warn", logFunc: func(l *slog.Logger) { l.Info("m") }, wantEmpty: true},
		{name: "error kept at error", level: "error", logFunc: func(l *slog.Logger) { l.Error("m") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(New(&buf, "json", tt.level))
			assert.Equal(t, tt.wantEmpty, buf.Len() == 0)
		})
	}
}

func TestNew_JSONStructure(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "json", "info")

	logger.Info("summary generated", slog.Int("sentences", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "summary generated", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, float64(3), entry["sentences"])
	assert.NotEmpty(t, entry["time"])
	assert.NotContains(t, entry, "source", "source locations only at debug level")
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "text", "info").Info("hello", slog.String("k", "v"))

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=v")
}

/* ───────── Context helpers ───────── */

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, "json", "info")
	ctx := requestid.WithRequestID(context.Background(), "550e8400-e29b-41d4-a716-446655440000")

	WithRequestID(ctx, base).Info("test message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", entry["request_id"])
}

func TestWithRequestID_EmptyRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, "json", "info")

	logger := WithRequestID(context.Background(), base)
	logger.Info("test message")

	assert.Same(t, base, logger)
	assert.NotContains(t, buf.String(), "request_id")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := WithFields(New(&buf, "json", "info"), map[string]any{
		"layout": "bullet",
		"ratio":  0.5,
	})

	logger.Info("formatted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "bullet", entry["layout"])
	assert.Equal(t, 0.5, entry["ratio"])
}

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	custom := New(&bytes.Buffer{}, "json", "info")
	ctx := WithLogger(context.Background(), custom)
	assert.Same(t, custom, FromContext(ctx))
}
