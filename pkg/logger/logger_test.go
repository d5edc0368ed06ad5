package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.Info("subscription active", "collection", "posts", "count", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "subscription active", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "posts", line["collection"])
	assert.Equal(t, float64(3), line["count"])
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.Error("boom")
	log.Warn("careful")
	log.Debug("detail")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)

	levels := make([]string, 0, len(lines))
	for _, l := range lines {
		var line map[string]any
		require.NoError(t, json.Unmarshal(l, &line))
		levels = append(levels, line["level"].(string))
	}
	assert.Equal(t, []string{"error", "warn", "debug"}, levels)
}

func TestDanglingArgIgnored(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.Info("msg", "key", "value", "dangling")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "value", line["key"])
	_, ok := line["dangling"]
	assert.False(t, ok)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error("ignored", "key", "value")
	})
}
