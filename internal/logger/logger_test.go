package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogKeepsLinesAndWritesRecords(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info")
	l.Log("cmd halt")
	l.Debug("hidden")

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "] cmd halt"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "console", rec["msg"])
	assert.Equal(t, "cmd halt", rec["line"])
}

func TestLinesAreBounded(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "error")
	for i := 0; i < maxLines+10; i++ {
		l.Log(fmt.Sprintf("line %d", i))
	}
	lines := l.Lines()
	assert.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], fmt.Sprintf("line %d", maxLines+9)))
	assert.Zero(t, buf.Len())
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Log("x")
		l.Debug("x")
		l.Info("x")
	})
	assert.Nil(t, l.Lines())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}
