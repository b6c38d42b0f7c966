// Package channel is the registry of communication channels the clinic
// receives patient messages on. The set is fixed at startup.
package channel

import (
	"strings"

	"github.com/clinicadigital/omnidesk/internal/errors"
)

// ID identifies a communication channel
type ID string

const (
	WhatsApp  ID = "whatsapp"
	Instagram ID = "instagram"
	Email     ID = "email"
	Website   ID = "website"
)

// Channel holds the presentation metadata for one medium
type Channel struct {
	ID    ID
	Label string
	Color string // hex color used for the channel dot and chart bars
	Icon  string // single-cell glyph
}

// registry is ordered; List returns it in this order.
var registry = []Channel{
	{ID: WhatsApp, Label: "WhatsApp", Color: "#25D366", Icon: "✆"},
	{ID: Instagram, Label: "Instagram", Color: "#E4405F", Icon: "◎"},
	{ID: Email, Label: "E-mail", Color: "#1877F2", Icon: "✉"},
	{ID: Website, Label: "Site", Color: "#6366F1", Icon: "◍"},
}

// List returns the supported channels in display order.
func List() []Channel {
	out := make([]Channel, len(registry))
	copy(out, registry)
	return out
}

// IDs returns the registered identifiers in display order.
func IDs() []ID {
	ids := make([]ID, len(registry))
	for i, c := range registry {
		ids[i] = c.ID
	}
	return ids
}

// Lookup returns the channel registered under id.
func Lookup(id ID) (Channel, error) {
	for _, c := range registry {
		if c.ID == id {
			return c, nil
		}
	}
	return Channel{}, errors.UnknownChannel(string(id))
}

// Parse normalizes s and looks it up.
func Parse(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if _, err := Lookup(id); err != nil {
		return "", err
	}
	return id, nil
}

// MustLookup is Lookup for identifiers known at compile time.
func MustLookup(id ID) Channel {
	c, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return c
}

// Label returns the display label, or the raw id for unregistered values.
func (id ID) Label() string {
	if c, err := Lookup(id); err == nil {
		return c.Label
	}
	return string(id)
}
