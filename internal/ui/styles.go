package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette. Populated from the active theme by regenerateStyles.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorBgSelected  color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorPatient     color.Color
	ColorAttendant   color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Header styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style

	FlashErrorStyle   lipgloss.Style
	FlashWarningStyle lipgloss.Style
	FlashInfoStyle    lipgloss.Style
	FlashSuccessStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Sidebar styles
var (
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarSectionStyle  lipgloss.Style
	SidebarCountStyle    lipgloss.Style
	ProfileNameStyle     lipgloss.Style
	ProfileRoleStyle     lipgloss.Style
	AvatarStyle          lipgloss.Style
)

// Inbox styles
var (
	ConversationNameStyle    lipgloss.Style
	ConversationPreviewStyle lipgloss.Style
	ConversationTimeStyle    lipgloss.Style
	UnreadBadgeStyle         lipgloss.Style
	SearchPromptStyle        lipgloss.Style
	EmptyStateStyle          lipgloss.Style
)

// Thread styles
var (
	PatientBubbleStyle   lipgloss.Style
	AttendantBubbleStyle lipgloss.Style
	MessageTimeStyle     lipgloss.Style
	ComposeStyle         lipgloss.Style
	ComposeFocusedStyle  lipgloss.Style
)

// Dashboard styles
var (
	CardStyle       lipgloss.Style
	CardTitleStyle  lipgloss.Style
	CardValueStyle  lipgloss.Style
	TrendUpStyle    lipgloss.Style
	TrendDownStyle  lipgloss.Style
	ChartLabelStyle lipgloss.Style
)

// Role selector and placeholder styles
var (
	RoleCardStyle         lipgloss.Style
	RoleCardSelectedStyle lipgloss.Style
	PlaceholderStyle      lipgloss.Style
)

// Modal styles
var (
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	StatusErrorStyle lipgloss.Style
)

func init() {
	regenerateStyles()
	RefreshModalStyles()
}

// buildStyles derives every style from the color palette.
func buildStyles() {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FlashErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	FlashWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	FlashInfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	FlashSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(ColorBgSelected).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	SidebarSectionStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Bold(true).
		Padding(0, 1).
		MarginTop(1)

	SidebarCountStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ProfileNameStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	ProfileRoleStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	AvatarStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	ConversationNameStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	ConversationPreviewStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ConversationTimeStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	UnreadBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	SearchPromptStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		Padding(1, 2)

	PatientBubbleStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPatient).
		Foreground(ColorText).
		Padding(0, 1)

	AttendantBubbleStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAttendant).
		Foreground(ColorText).
		Padding(0, 1)

	MessageTimeStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ComposeStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ComposeFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	CardValueStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	TrendUpStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TrendDownStyle = lipgloss.NewStyle().Foreground(ColorError)

	ChartLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	RoleCardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(1, 2).
		Width(RoleCardWidth)

	RoleCardSelectedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(RoleCardWidth)

	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Align(lipgloss.Center)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}
