package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/lvkit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FanoutToConsoleAndWriter(t *testing.T) {
	var console, file bytes.Buffer
	l := logger.New(logger.WithConsole(&console), logger.WithWriter(&file))

	l.Info("solved", "value", 30)
	assert.Contains(t, console.String(), "msg=solved")
	assert.Contains(t, file.String(), "value=30")
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer

	logger.New(logger.WithConsole(&buf)).Debug("hidden")
	assert.Empty(t, buf.String())

	logger.New(logger.WithConsole(&buf), logger.WithDebug()).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger.New(logger.WithConsole(&buf), logger.WithFormat("json")).Info("hello", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "v", rec["k"])
}

func TestNew_Quiet(t *testing.T) {
	var console, file bytes.Buffer
	logger.New(logger.WithConsole(&console), logger.WithWriter(&file), logger.WithQuiet()).Info("x")
	assert.Empty(t, console.String())
	assert.NotEmpty(t, file.String())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.WithConsole(&buf))
	ctx := logger.WithLogger(context.Background(), l)

	logger.FromContext(ctx).Info("via ctx")
	assert.Contains(t, buf.String(), "via ctx")

	// Missing logger falls back to a discarding one.
	assert.NotPanics(t, func() { logger.FromContext(context.Background()).Info("dropped") })
}
