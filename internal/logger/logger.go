// Package logger writes structured logs to a rotating file. The terminal
// belongs to the TUI, so nothing is ever written to stdout or stderr.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Entry is a captured WARN or ERROR record.
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
}

// Format renders an entry as a single line.
func (e Entry) Format() string {
	return fmt.Sprintf("%s %-5s %s", e.Time.Format("15:04:05"), e.Level.String(), e.Message)
}

// recent is a fixed-size circular buffer of entries.
type recent struct {
	mu      sync.RWMutex
	entries []Entry
	head    int
	count   int
}

func newRecent(size int) *recent {
	return &recent{entries: make([]Entry, size)}
}

func (r *recent) add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.head] = e
	r.head = (r.head + 1) % len(r.entries)
	if r.count < len(r.entries) {
		r.count++
	}
}

// all returns the entries oldest first.
func (r *recent) all() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	size := len(r.entries)
	out := make([]Entry, r.count)
	for i := range out {
		out[i] = r.entries[(r.head-r.count+i+size)%size]
	}
	return out
}

// captureHandler keeps WARN and ERROR records in memory before passing them on.
type captureHandler struct {
	inner  slog.Handler
	buffer *recent
}

func (h *captureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.buffer.add(Entry{Time: r.Time, Level: r.Level, Message: r.Message})
	}
	return h.inner.Handle(ctx, r)
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &captureHandler{inner: h.inner.WithAttrs(attrs), buffer: h.buffer}
}

func (h *captureHandler) WithGroup(name string) slog.Handler {
	return &captureHandler{inner: h.inner.WithGroup(name), buffer: h.buffer}
}

var (
	// Log is the global structured logger
	Log *slog.Logger
	// LogPath is the path to the current log file
	LogPath string

	logWriter *lumberjack.Logger
	buffer    *recent
)

// DefaultPath returns ~/.config/ddv/ddv.log, falling back to the temp dir.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".config", "ddv", "ddv.log")
}

// Init sets up the global logger. An empty path selects DefaultPath.
func Init(debug bool, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	LogPath = path

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logWriter = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}
	buffer = newRecent(100)

	Log = slog.New(&captureHandler{
		inner:  slog.NewJSONHandler(logWriter, &slog.HandlerOptions{Level: level}),
		buffer: buffer,
	})
	slog.SetDefault(Log)
	return nil
}

// Close closes the log file
func Close() {
	if logWriter != nil {
		logWriter.Close()
	}
}

func get() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}

// Debug logs a debug message
func Debug(msg string, args ...any) { get().Debug(msg, args...) }

// Info logs an info message
func Info(msg string, args ...any) { get().Info(msg, args...) }

// Warn logs a warning message
func Warn(msg string, args ...any) { get().Warn(msg, args...) }

// Error logs an error message
func Error(msg string, args ...any) { get().Error(msg, args...) }

// With creates a new logger with additional attributes
func With(args ...any) *slog.Logger { return get().With(args...) }

// Entries returns the captured WARN and ERROR entries, oldest first.
func Entries() []Entry {
	if buffer == nil {
		return nil
	}
	return buffer.all()
}
