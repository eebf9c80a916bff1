package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
		ok    bool
	}{
		{"ERROR", LogLevelError, true},
		{"warn", LogLevelWarn, true},
		{" INFO ", LogLevelInfo, true},
		{"DEBUG", LogLevelDebug, true},
		{"TRACE", LogLevelTrace, true},
		{"", LogLevelInfo, false},
		{"VERBOSE", LogLevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLogLevel(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, LogLevelWarn)

	logger.Error("error %d", 1)
	logger.Warn("warn %d", 2)
	logger.Info("info %d", 3)
	logger.Debug("debug %d", 4)

	out := buf.String()
	assert.Contains(t, out, "[ERROR] error 1")
	assert.Contains(t, out, "[WARN] warn 2")
	assert.NotContains(t, out, "info 3")
	assert.NotContains(t, out, "debug 4")
}

func TestLoggerWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, LogLevelInfo).With("run=abc")

	logger.Info("loaded %d rows", 2)

	assert.Contains(t, buf.String(), "[INFO] run=abc loaded 2 rows")
	assert.Equal(t, LogLevelInfo, logger.GetLevel())
}
