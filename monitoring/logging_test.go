package monitoring_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/davidvella/kway/monitoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	l := monitoring.NewLogger(&buf, "extsort", monitoring.INFO)

	l.Log(context.Background(), monitoring.DEBUG, "spill", "dropped", nil)
	l.Log(context.Background(), monitoring.INFO, "spill", "run spilled", map[string]any{"values": 3})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry monitoring.LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "extsort", entry.Component)
	assert.Equal(t, "spill", entry.EventType)
	assert.Equal(t, "run spilled", entry.Message)
	assert.EqualValues(t, 3, entry.Details["values"])
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level monitoring.LogLevel
		want  string
	}{
		{monitoring.DEBUG, "DEBUG"},
		{monitoring.INFO, "INFO"},
		{monitoring.WARN, "WARN"},
		{monitoring.ERROR, "ERROR"},
		{monitoring.LogLevel(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		monitoring.Nop().Log(context.Background(), monitoring.ERROR, "x", "y", nil)
	})
}
