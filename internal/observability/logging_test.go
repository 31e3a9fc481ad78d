package observability_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineal-viz/lineal/internal/observability"
)

func TestNewTags(t *testing.T) {
	t.Parallel()

	tags := observability.NewTags("series", "loss", "mode", "window")
	assert.Equal(t, observability.Tags{"series": "loss", "mode": "window"}, tags)

	tags = observability.NewTags(slog.String("k", "v"), "count", 3)
	assert.Equal(t, observability.Tags{"k": "v", "count": "3"}, tags)

	// Dangling key and non-string junk are dropped.
	tags = observability.NewTags("a", "1", "dangling")
	assert.Equal(t, observability.Tags{"a": "1"}, tags)
	tags = observability.NewTags(42, "a", "1")
	assert.Equal(t, observability.Tags{"a": "1"}, tags)

	assert.Empty(t, observability.NewTags())
}

func TestCoreLogger_BaseTagsInEveryRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := observability.NewCoreLogger(
		slog.New(slog.NewJSONHandler(&buf, nil)),
		&observability.CoreLoggerParams{Tags: observability.Tags{"component": "chart"}},
	)

	logger.Info("hello", "extra", "x")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "chart", record["component"])
	assert.Equal(t, "x", record["extra"])
}

func TestCoreLogger_CaptureErrorWithoutSentry(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := observability.NewCoreLogger(
		slog.New(slog.NewJSONHandler(&buf, nil)),
		nil,
	)

	// No Sentry client configured: logs only, never panics.
	logger.CaptureError(errors.New("boom"), "series", "loss")
	logger.CaptureWarn("odd state")

	var record map[string]any
	dec := json.NewDecoder(&buf)
	require.NoError(t, dec.Decode(&record))
	assert.Equal(t, "boom", record["msg"])
	assert.Equal(t, "ERROR", record["level"])
}

func TestCoreLogger_With(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := observability.NewCoreLogger(
		slog.New(slog.NewJSONHandler(&buf, nil)),
		nil,
	)

	derived := logger.With("series", "loss")
	derived.Info("msg")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "loss", record["series"])
}

func TestNoOpLogger(t *testing.T) {
	t.Parallel()

	logger := observability.NewNoOpLogger()
	logger.Info("discarded")
	logger.CaptureError(errors.New("discarded"))
}
