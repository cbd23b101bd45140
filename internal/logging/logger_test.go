package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, line []byte) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(line, &entry))
	return entry
}

func TestLoggerWritesJSONEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := New(InfoLevel, &buf)

	logger.Info("minimize finished", map[string]interface{}{
		"method": "brent",
		"nfev":   24,
	})

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "minimize finished", entry["message"])
	assert.Equal(t, "brent", entry["method"])
	assert.Equal(t, float64(24), entry["nfev"])
	assert.Contains(t, entry, "timestamp")
	assert.Contains(t, entry, "caller")
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WarnLevel, &buf)

	logger.Debug("dropped")
	logger.Info("dropped too")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestLoggerFieldChaining(t *testing.T) {
	var buf bytes.Buffer
	base := New(DebugLevel, &buf)

	derived := base.WithField("service", "scalr").WithFields(map[string]interface{}{
		"method": "golden",
	})
	derived.Info("run started")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "scalr", entry["service"])
	assert.Equal(t, "golden", entry["method"])

	// The base logger is untouched by derivation.
	buf.Reset()
	base.Info("plain")
	entry = decodeEntry(t, buf.Bytes())
	assert.NotContains(t, entry, "service")
}

func TestLoggerTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&Config{Level: "debug", Format: FormatText, Output: "stderr"})
	require.NoError(t, err)
	logger.output = &buf

	logger.WithField("method", "bounded").Info("run finished")

	line := buf.String()
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Contains(t, line, "[INFO]")
	assert.Contains(t, line, "run finished")
	assert.Contains(t, line, "method=bounded")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"Warn", WarnLevel},
		{"error", ErrorLevel},
		{"fatal", FatalLevel},
		{"unknown", InfoLevel},
		{"", InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestFromContextFallback(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)

	var buf bytes.Buffer
	ctxLogger := &CtxLogger{New(DebugLevel, &buf)}
	ctx := ctxLogger.WithContext(context.Background())
	assert.Same(t, ctxLogger, FromContext(ctx))
}
