// Package clipboard copies message text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/clinicadigital/omnidesk/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error

	// write is swapped out in tests; the real clipboard needs a display.
	write = func(text string) error {
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	}
	read = func() string {
		return string(clipboard.Read(clipboard.FmtText))
	}
	initialize = clipboard.Init
)

// Init initializes the clipboard. Safe to call multiple times; the first
// result is remembered.
func Init() error {
	initOnce.Do(func() {
		if err := initialize(); err != nil {
			logger.WithComponent("clipboard").Warn("clipboard unavailable", "error", err)
			initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
		}
	})
	return initErr
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	if err := write(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	logger.WithComponent("clipboard").Debug("copied text", "bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard.
func ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	return read(), nil
}
