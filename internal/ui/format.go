package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/clinicadigital/omnidesk/internal/channel"
	"github.com/clinicadigital/omnidesk/internal/controller"
)

// relativeMagnitudes renders activity ages the way the inbox shows them
// ("agora", "há 3 min", "há 2 h").
var relativeMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "agora", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "%s 1 min", DivBy: 1},
	{D: time.Hour, Format: "%s %d min", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "%s 1 h", DivBy: 1},
	{D: humanize.Day, Format: "%s %d h", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "%s 1 dia", DivBy: 1},
	{D: humanize.Week, Format: "%s %d dias", DivBy: humanize.Day},
	{D: math.MaxInt64, Format: "%s %d sem", DivBy: humanize.Week},
}

// RelativeTime describes t relative to now
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.CustomRelTime(t, now, "há", "em", relativeMagnitudes)
}

// ClockTime formats a message timestamp as HH:MM
func ClockTime(t time.Time) string {
	return t.Format("15:04")
}

// truncate cuts an already styled string to width cells
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

func channelColor(c controller.ChannelCount) string {
	if ch, err := channel.Lookup(c.ID); err == nil {
		return ch.Color
	}
	return "#6B7280"
}

func channelIcon(id channel.ID) string {
	if ch, err := channel.Lookup(id); err == nil {
		return ch.Icon
	}
	return "?"
}
