// Package logger writes omnidesk's debug log. The TUI owns stdout, so all
// diagnostics go to a file through a process-wide slog text handler.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// DefaultLogPath is the default log file for the interactive dashboard
const DefaultLogPath = "/tmp/omnidesk-debug.log"

// DemoLogPath returns the log path for a headless demo run
func DemoLogPath(scenario string) string {
	return fmt.Sprintf("/tmp/omnidesk-demo-%s.log", scenario)
}

var (
	mu       sync.Mutex
	base     *slog.Logger
	sink     io.Closer
	levelVar = new(slog.LevelVar)
	debug    bool
)

// SetDebug toggles debug level output. It can be called before or after Init.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// IsDebug reports whether debug logging is enabled
func IsDebug() bool {
	mu.Lock()
	defer mu.Unlock()
	return debug
}

// Init opens path for appending and routes all logging there.
// Calling Init again after a successful call is a no-op until Reset.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if base != nil {
		return nil
	}
	return openLocked(path)
}

func openLocked(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	sink = f
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	base.Info("logger initialized", "path", path)
	return nil
}

// current returns the active logger, lazily opening the default path.
// Must be called with mu held.
func current() *slog.Logger {
	if base == nil {
		if err := openLocked(DefaultLogPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			base = slog.New(slog.DiscardHandler)
		}
	}
	return base
}

func logf(level slog.Level, format string, args ...interface{}) {
	mu.Lock()
	l := current()
	mu.Unlock()

	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a printf-style debug message
func Debug(format string, args ...interface{}) { logf(slog.LevelDebug, format, args...) }

// Info writes a printf-style info message
func Info(format string, args ...interface{}) { logf(slog.LevelInfo, format, args...) }

// Warn writes a printf-style warning
func Warn(format string, args ...interface{}) { logf(slog.LevelWarn, format, args...) }

// Error writes a printf-style error
func Error(format string, args ...interface{}) { logf(slog.LevelError, format, args...) }

// WithComponent returns a slog.Logger with the component attribute pre-attached.
//
// Example:
//
//	log := logger.WithComponent("inbox")
//	log.Debug("conversation selected", "conversationID", id)
func WithComponent(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current().With(slog.String("component", component))
}

// WithConversation returns a slog.Logger scoped to one conversation.
func WithConversation(conversationID string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current().With(slog.String("conversationID", conversationID))
}

// Close flushes and closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if sink != nil {
		sink.Close()
		sink = nil
	}
	base = nil
}

// Reset closes the log file and restores the initial state.
// This is primarily for testing purposes.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if sink != nil {
		sink.Close()
		sink = nil
	}
	base = nil
	debug = false
	levelVar = new(slog.LevelVar)
}

// ClearLogs removes all omnidesk log files from /tmp
func ClearLogs() (int, error) {
	paths := []string{DefaultLogPath}
	demoLogs, err := filepath.Glob("/tmp/omnidesk-demo-*.log")
	if err != nil {
		return 0, err
	}
	paths = append(paths, demoLogs...)

	count := 0
	for _, p := range paths {
		if err := os.Remove(p); err == nil {
			count++
		} else if !os.IsNotExist(err) {
			return count, err
		}
	}
	return count, nil
}
