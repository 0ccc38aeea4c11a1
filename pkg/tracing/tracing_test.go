package tracing_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/chemicaljson/pkg/tracing"
)

func TestLoggingTracer(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	span := tracing.NewLoggingTracer(logger).StartSpan("validate")
	span.SetAttr(slog.String("path", "water.cjson"))
	elapsed := span.Finish()
	assert.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "trace", line["msg"])
	assert.Equal(t, "validate", line["operation_name"])
	assert.Equal(t, "water.cjson", line["path"])
	assert.Contains(t, line, "time_ms")
}

func TestLoggingTracerLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	tracing.NewLoggingTracer(logger).StartSpan("validate").Finish()
	assert.Empty(t, buf.String())
}

func TestLoggingTracerFinishTwice(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	span := tracing.NewLoggingTracer(logger).StartSpan("validate")
	span.SetAttr(slog.String("path", "water.cjson"))
	span.SetAttr(slog.Int("atoms", 3))
	span.SetAttr(slog.Int("bonds", 2))
	span.Finish()

	span.SetAttr(slog.Int("warnings", 1))
	span.Finish()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	for _, line := range lines {
		assert.Equal(t, 1, strings.Count(line, `"operation_name"`))
		assert.Equal(t, 1, strings.Count(line, `"time_ms"`))
		assert.Contains(t, line, `"bonds":2`)
	}

	assert.NotContains(t, lines[0], `"warnings"`)
	assert.Contains(t, lines[1], `"warnings":1`)
}
