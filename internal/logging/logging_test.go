package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannm99/sqlmask/internal"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestSetupLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := SetupLogger(internal.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("shown", "table", "t")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"table":"t"`)
}

func TestMultiHandler(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}
	logger := slog.New(h).With("conn", "c1")

	logger.Debug("dbg")
	logger.Warn("wrn")

	assert.Contains(t, a.String(), "dbg")
	assert.Contains(t, a.String(), "wrn")
	assert.NotContains(t, b.String(), "dbg")
	assert.Contains(t, b.String(), "conn=c1")
}
