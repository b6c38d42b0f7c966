package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinicadigital/omnidesk/internal/controller"
	"github.com/clinicadigital/omnidesk/internal/keys"
)

// RoleSelector is the entry screen where the user picks a profile.
type RoleSelector struct {
	width  int
	height int
	roles  []controller.Role
	cursor int
	clinic string
}

// NewRoleSelector creates a selector over the selectable roles
func NewRoleSelector() *RoleSelector {
	return &RoleSelector{roles: controller.Roles()}
}

// SetSize sets the screen dimensions
func (r *RoleSelector) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// SetClinicName sets the title shown above the cards
func (r *RoleSelector) SetClinicName(name string) {
	r.clinic = name
}

// Selected returns the role under the cursor
func (r *RoleSelector) Selected() controller.Role {
	return r.roles[r.cursor]
}

// Update moves the cursor between role cards
func (r *RoleSelector) Update(msg tea.Msg) (*RoleSelector, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}
	switch keyMsg.String() {
	case keys.Left, keys.Up, keys.ShiftTab, "h", "k":
		r.cursor = (r.cursor - 1 + len(r.roles)) % len(r.roles)
	case keys.Right, keys.Down, keys.Tab, "l", "j":
		r.cursor = (r.cursor + 1) % len(r.roles)
	}
	return r, nil
}

func (r *RoleSelector) card(role controller.Role, selected bool) string {
	p := controller.ProfileFor(role)
	style := RoleCardStyle
	if selected {
		style = RoleCardSelectedStyle
	}
	inner := RoleCardWidth - 6

	var b strings.Builder
	b.WriteString(AvatarStyle.Render(p.Initials) + " " + ProfileNameStyle.Render(role.Label()) + "\n")
	b.WriteString(ProfileRoleStyle.Render(p.Name) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(ColorTextMuted).Width(inner).Render(p.Description) + "\n\n")
	b.WriteString(SidebarSectionStyle.UnsetMarginTop().UnsetPadding().Render("Funcionalidades:") + "\n")
	for _, f := range p.Features {
		b.WriteString(lipgloss.NewStyle().Foreground(ColorText).Render("• "+f) + "\n")
	}

	button := "Selecionar"
	if selected {
		button = UnreadBadgeStyle.Render("Acessar Sistema")
	} else {
		button = ConversationPreviewStyle.Render(button)
	}
	b.WriteString("\n" + button)
	return style.Render(b.String())
}

// View renders the selector centered on screen
func (r *RoleSelector) View() string {
	clinic := r.clinic
	if clinic == "" {
		clinic = "Clínica Digital"
	}
	title := lipgloss.JoinVertical(lipgloss.Center,
		PanelTitleStyle.Render(clinic),
		ConversationNameStyle.Render("Sistema Omnichannel"),
		ConversationPreviewStyle.Render("Selecione seu perfil de acesso"),
	)

	var cards []string
	for i, role := range r.roles {
		if i > 0 {
			cards = append(cards, "  ")
		}
		cards = append(cards, r.card(role, i == r.cursor))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	screen := lipgloss.JoinVertical(lipgloss.Center, title, "", row)
	return lipgloss.Place(r.width, r.height, lipgloss.Center, lipgloss.Center, screen)
}
