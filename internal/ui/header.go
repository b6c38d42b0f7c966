package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const brandText = " omnidesk"

// Header represents the top header bar
type Header struct {
	width      int
	title      string
	clinicName string
	active     int
	showBadge  bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTitle sets the active tab title
func (h *Header) SetTitle(title string) {
	h.title = title
}

// SetClinicName sets the clinic name shown on the right
func (h *Header) SetClinicName(name string) {
	h.clinicName = name
}

// SetActiveCount sets the open conversation badge. The badge is hidden
// until a role has been chosen.
func (h *Header) SetActiveCount(n int, show bool) {
	h.active = n
	h.showBadge = show
}

// badgeText returns the open conversation count label
func (h *Header) badgeText() string {
	if !h.showBadge {
		return ""
	}
	if h.active == 1 {
		return "1 conversa ativa"
	}
	return fmt.Sprintf("%d conversas ativas", h.active)
}

// View renders the header
func (h *Header) View() string {
	left := brandText
	if h.title != "" {
		left += " · " + h.title
	}

	var right []string
	if badge := h.badgeText(); badge != "" {
		right = append(right, "● "+badge)
	}
	if h.clinicName != "" {
		right = append(right, h.clinicName)
	}
	rightText := ""
	if len(right) > 0 {
		rightText = strings.Join(right, "  ") + " "
	}

	paddingLen := h.width - runewidth.StringWidth(left) - runewidth.StringWidth(rightText)
	if paddingLen < 1 {
		paddingLen = 1
	}

	content := left + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(content, len([]rune(left)))
}

// parseHexColor parses a hex color string (e.g., "#2563EB") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content over a background that fades from the
// theme's primary color to its background. Runes before titleEnd are bold.
func (h *Header) renderGradient(content string, titleEnd int) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	brandLen := len([]rune(brandText))

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(textColor).
			Bold(i < brandLen || i < titleEnd && i > brandLen+2)

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
