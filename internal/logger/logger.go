package logger

import (
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the rotating structured log inside the log directory.
const LogFileName = "merrygoround.slog"

// maxLines bounds the in-memory history shown by the console.
const maxLines = 256

// Logger writes structured JSON records to a rotating file and keeps recent human-readable
// lines in memory for the console overlay. A nil *Logger discards everything.
type Logger struct {
	*slog.Logger
	LogFile string

	mu    sync.Mutex
	lines []string
}

// New returns a Logger writing to dir/LogFileName at the given level
// ("debug", "info", "warn", "error"; anything else means info).
func New(dir, level string) *Logger {
	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, LogFileName),
		MaxSize:    16, // MB
		MaxBackups: 1,
	}
	l := NewWithWriter(w, level)
	l.LogFile = w.Filename
	l.Info("Hello logging", slog.Time("start", time.Now()),
		slog.String("GOOS", runtime.GOOS), slog.String("GOARCH", runtime.GOARCH))
	return l
}

// NewWithWriter is New without the file: records go to w.
func NewWithWriter(w io.Writer, level string) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return &Logger{Logger: slog.New(h), lines: make([]string, 0)}
}

// ParseLevel maps a level name onto slog.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Log records line for the console and writes it at info level. Each entry is prefixed with [timestamp] using computer time.
func (l *Logger) Log(line string) {
	if l == nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	l.mu.Unlock()

	l.Logger.Info("console", slog.String("line", line))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Debug and the following wrappers let callers hold a nil *Logger.
func (l *Logger) Debug(msg string, args ...any) {
	if l != nil {
		l.Logger.Debug(msg, args...)
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l != nil {
		l.Logger.Info(msg, args...)
	}
}

func (l *Logger) Warn(msg string, args ...any) {
	if l == nil {
		slog.Warn(msg, args...)
		return
	}
	l.Logger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	if l == nil {
		slog.Error(msg, args...)
		return
	}
	l.Logger.Error(msg, args...)
}
