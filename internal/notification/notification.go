// Package notification raises desktop notifications for inbound patient
// messages. It uses beeep, which covers macOS, Linux and Windows.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/mattn/go-runewidth"

	"github.com/clinicadigital/omnidesk/internal/logger"
)

// PreviewWidth caps the message excerpt shown in a notification, in cells.
const PreviewWidth = 60

type notifyFunc func(title, message string, icon any) error

var notify notifyFunc = beeep.Notify

// SetNotifier replaces the notification backend (for tests)
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores the beeep backend
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title)
	// Empty icon lets beeep pick the platform default.
	err := notify(title, message, "")
	if err != nil {
		log.Warn("notification failed", "error", err)
	}
	return err
}

// InboundMessage announces a patient message received on a channel.
func InboundMessage(contact, channelLabel, content string) error {
	title := fmt.Sprintf("Nova mensagem · %s", channelLabel)
	preview := runewidth.Truncate(content, PreviewWidth, "…")
	return Send(title, contact+": "+preview)
}
