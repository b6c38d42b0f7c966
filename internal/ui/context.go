package ui

import (
	"log/slog"

	"github.com/clinicadigital/omnidesk/internal/logger"
)

// ViewContext holds the layout calculations for one dashboard model.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int
	ContentWidth  int // everything right of the sidebar
	ListWidth     int // inbox conversation list
	ThreadWidth   int // inbox thread panel

	log *slog.Logger
}

// NewViewContext creates a context sized to the minimum terminal.
func NewViewContext() *ViewContext {
	v := &ViewContext{log: logger.WithComponent("ui")}
	v.UpdateTerminalSize(MinTerminalWidth, MinTerminalHeight)
	return v
}

// UpdateTerminalSize recalculates all dimensions when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	v.SidebarWidth = SidebarWidth
	v.ContentWidth = width - v.SidebarWidth

	v.ListWidth = v.ContentWidth / ConversationListRatio
	if v.ListWidth < MinConversationListWidth {
		v.ListWidth = MinConversationListWidth
	}
	v.ThreadWidth = v.ContentWidth - v.ListWidth

	v.log.Debug("terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"listWidth", v.ListWidth,
		"threadWidth", v.ThreadWidth,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return max(panelWidth-BorderSize, 0)
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return max(panelHeight-BorderSize, 0)
}
