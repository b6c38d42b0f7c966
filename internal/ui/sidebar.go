package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/clinicadigital/omnidesk/internal/controller"
)

// Sidebar is the left navigation panel: role menu, open conversations per
// channel and the signed-in profile.
type Sidebar struct {
	width    int
	height   int
	menu     []controller.MenuItem
	active   controller.Tab
	channels []controller.ChannelCount
	profile  controller.Profile
}

// NewSidebar creates an empty sidebar
func NewSidebar() *Sidebar {
	return &Sidebar{}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetState refreshes the sidebar from a controller snapshot
func (s *Sidebar) SetState(v controller.View) {
	s.menu = v.Menu
	s.active = v.Tab
	s.channels = v.Channels
	s.profile = controller.ProfileFor(v.Role)
}

// menuLine renders one numbered menu entry
func (s *Sidebar) menuLine(i int, item controller.MenuItem, inner int) string {
	text := fmt.Sprintf("%d %s %s", i+1, item.Icon, item.Label)
	text = runewidth.Truncate(text, inner-2, "…")
	if item.Tab == s.active {
		return SidebarSelectedStyle.Width(inner).Render(text)
	}
	return SidebarItemStyle.Width(inner).Render(text)
}

// channelLine renders a channel dot, label and open count right-aligned
func (s *Sidebar) channelLine(c controller.ChannelCount, color string, inner int) string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
	count := SidebarCountStyle.Render(fmt.Sprintf("%d", c.Open))
	label := runewidth.Truncate(c.Label, inner-8, "…")
	gap := inner - 2 - runewidth.StringWidth(label) - 2 - lipgloss.Width(count)
	if gap < 1 {
		gap = 1
	}
	return " " + dot + " " + label + strings.Repeat(" ", gap) + count
}

func (s *Sidebar) profileBlock(inner int) string {
	if s.profile.Role == controller.RoleNone {
		return ""
	}
	avatar := AvatarStyle.Render(s.profile.Initials)
	name := ProfileNameStyle.Render(runewidth.Truncate(s.profile.Name, inner-6, "…"))
	role := ProfileRoleStyle.Render(s.profile.Role.Label())
	return lipgloss.JoinHorizontal(lipgloss.Top,
		" ", avatar, " ",
		lipgloss.JoinVertical(lipgloss.Left, name, role),
	)
}

// View renders the sidebar
func (s *Sidebar) View() string {
	inner := max(s.width-BorderSize, 0)
	innerHeight := max(s.height-BorderSize, 0)

	var lines []string
	lines = append(lines, SidebarSectionStyle.UnsetMarginTop().Render("MENU"))
	for i, item := range s.menu {
		lines = append(lines, s.menuLine(i, item, inner))
	}

	if len(s.channels) > 0 {
		lines = append(lines, SidebarSectionStyle.Render("CANAIS"))
		for _, c := range s.channels {
			lines = append(lines, s.channelLine(c, channelColor(c), inner))
		}
	}

	top := strings.Join(lines, "\n")
	profile := s.profileBlock(inner)

	// Pin the profile to the bottom of the panel
	gap := max(innerHeight-lipgloss.Height(top)-lipgloss.Height(profile), 0)
	content := top
	if profile != "" {
		content += strings.Repeat("\n", gap+1) + profile
	}

	return PanelStyle.
		Width(s.width).
		Height(s.height).
		Render(content)
}
