package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinicadigital/omnidesk/internal/controller"
	"github.com/clinicadigital/omnidesk/internal/dashboard"
	"github.com/clinicadigital/omnidesk/internal/settings"
	"github.com/clinicadigital/omnidesk/internal/ui"
	"github.com/clinicadigital/omnidesk/internal/ui/modals"
)

// helpModalBindings replace the modal hints while the shortcut list is open
var helpModalBindings = []ui.KeyBinding{
	{Key: "enter", Desc: "executar"},
	{Key: "/", Desc: "filtrar"},
	{Key: "esc", Desc: "fechar"},
}

// updateSizes propagates the terminal size to every component
func (m *Model) updateSizes() {
	m.ctx.UpdateTerminalSize(m.width, m.height)
	ctx := m.ctx

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.list.SetSize(ctx.ListWidth, ctx.ContentHeight)
	m.thread.SetSize(ctx.ThreadWidth, ctx.ContentHeight)
	m.roles.SetSize(ctx.TerminalWidth, ctx.TerminalHeight-ctx.FooterHeight)
	m.panel.SetWidth(ctx.ContentWidth)
	m.panel.SetHeight(ctx.ContentHeight)
}

// updateFooterMode picks the key hints for the current context
func (m *Model) updateFooterMode() {
	m.footer.SetBindings(nil)
	switch {
	case m.modal.IsVisible():
		m.footer.SetMode(ui.FooterModal)
		if _, ok := m.modal.State.(*modals.HelpState); ok {
			m.footer.SetBindings(helpModalBindings)
		}
	case m.ctrl.Role() == controller.RoleNone:
		m.footer.SetMode(ui.FooterRoleSelect)
	case m.ctrl.Tab() == controller.TabInbox:
		switch {
		case m.focus == FocusCompose:
			m.footer.SetMode(ui.FooterCompose)
		case m.list.IsSearching():
			m.footer.SetMode(ui.FooterSearch)
		default:
			m.footer.SetMode(ui.FooterInboxList)
		}
	case m.ctrl.Tab() == controller.TabSettings:
		m.footer.SetMode(ui.FooterSettings)
	default:
		m.footer.SetMode(ui.FooterPanel)
	}
}

// refreshPanel re-renders the scrollable content of the non-inbox tabs.
// The scroll offset survives unless the content got shorter.
func (m *Model) refreshPanel() {
	if m.ctrl.Role() == controller.RoleNone || m.ctrl.Tab() == controller.TabInbox {
		return
	}
	m.panel.SetContent(m.panelContent(m.ctx.ContentWidth))
}

// panelContent renders the body of the current non-inbox tab
func (m *Model) panelContent(width int) string {
	switch m.ctrl.Tab() {
	case controller.TabDashboard:
		half := width / 2
		charts := lipgloss.JoinHorizontal(lipgloss.Top,
			ui.RenderActivity(m.board.Hourly(), half),
			ui.RenderChannels(m.channelVolumes(), width-half),
		)
		return lipgloss.JoinVertical(lipgloss.Left,
			ui.RenderCards(dashboard.Cards(m.board, m.ctrl.Conversations()), width),
			charts,
			ui.RenderTeam(m.board.Team(), width),
		)
	case controller.TabTeam:
		return ui.RenderTeam(m.board.Team(), width)
	case controller.TabMetrics:
		return lipgloss.JoinVertical(lipgloss.Left,
			ui.RenderActivity(m.board.Hourly(), width),
			ui.RenderChannels(m.channelVolumes(), width),
		)
	case controller.TabSettings:
		return ui.RenderSettings(m.settings.Get(), settings.Integrations(), width)
	default:
		return ui.RenderPlaceholder(width, m.ctx.ContentHeight)
	}
}

// channelVolumes layers the messages counted this session on the baseline
func (m *Model) channelVolumes() []dashboard.ChannelVolume {
	counts, err := m.metrics.Counts()
	if err != nil {
		m.log.Warn("metrics unavailable", "error", err)
		return m.board.Channels()
	}
	return dashboard.ChannelVolumes(m.board, counts.ByChannel())
}

// contentView renders the area right of the sidebar
func (m *Model) contentView() string {
	if m.ctrl.Tab() == controller.TabInbox {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.thread.View())
	}
	return lipgloss.NewStyle().
		Width(m.ctx.ContentWidth).
		Height(m.ctx.ContentHeight).
		MaxHeight(m.ctx.ContentHeight).
		Render(m.panel.View())
}

// RenderToString renders the whole screen as a string. Used by View and by
// headless snapshots.
func (m *Model) RenderToString() string {
	m.updateFooterMode()
	ctx := m.ctx

	if m.modal.IsVisible() {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.modal.View(ctx.TerminalWidth, ctx.TerminalHeight-ctx.FooterHeight),
			m.footer.View(),
		)
	}

	if m.ctrl.Role() == controller.RoleNone {
		return lipgloss.JoinVertical(lipgloss.Left, m.roles.View(), m.footer.View())
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.contentView())
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		panels,
		m.footer.View(),
	)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Carregando...")
		return v
	}

	v.SetContent(m.RenderToString())
	return v
}
