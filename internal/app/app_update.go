package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/clinicadigital/omnidesk/internal/controller"
	"github.com/clinicadigital/omnidesk/internal/keys"
	"github.com/clinicadigital/omnidesk/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		m.refreshPanel()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseWheelMsg:
		return m, m.routeScroll(msg)

	case InboundMsg:
		return m, m.deliverInbound(msg)

	case feedMsg:
		return m.handleFeedMsg(msg)

	case notifiedMsg:
		return m.handleNotified(msg)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return m, nil
		}
		return m, ui.FlashTick()
	}

	// Everything else (cursor blink, paste) goes to whatever holds focus
	var cmd tea.Cmd
	switch {
	case m.modal.IsVisible():
		m.modal, cmd = m.modal.Update(msg)
	case m.focus == FocusCompose:
		m.thread, cmd = m.thread.Update(msg)
	}
	return m, cmd
}

// handleKeyPress handles all keyboard input
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.log.Debug("key press", "key", key, "focus", m.focus, "tab", m.ctrl.Tab(), "modal", m.modal.IsVisible())

	// ctrl+c always quits, even from a modal or the compose box
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if m.ctrl.Role() == controller.RoleNone {
		return m.handleRoleSelectKey(msg)
	}

	if m.ctrl.Tab() == controller.TabInbox {
		if m.focus == FocusCompose {
			return m.handleComposeKey(msg)
		}
		if m.list.IsSearching() {
			return m.handleSearchKey(msg)
		}
	}

	if idx, ok := keys.MenuIndex(key); ok {
		return m, m.selectMenuItem(idx)
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	if m.ctrl.Tab() == controller.TabInbox {
		return m.handleListKey(msg)
	}
	return m.handlePanelKey(msg)
}

// handleRoleSelectKey drives the profile selector shown before a role is chosen
func (m *Model) handleRoleSelectKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Enter:
		role := m.roles.Selected()
		if err := m.ctrl.ChooseRole(role); err != nil {
			return m, m.flashError(err)
		}
		m.log.Info("role chosen", "role", role, "tab", m.ctrl.Tab())
		m.setFocus(FocusList)
		m.panel.GotoTop()
		m.refresh()
		return m, m.ShowFlashInfo("Bem-vindo(a), " + controller.ProfileFor(role).Name)
	case "q":
		return m, tea.Quit
	}
	m.roles, _ = m.roles.Update(msg)
	return m, nil
}

// handleListKey handles keys while the conversation list has focus
func (m *Model) handleListKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keys.Enter {
		return m, m.openCursorConversation()
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKey feeds the search input. Enter keeps the filter and opens
// the best match.
func (m *Model) handleSearchKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if msg.String() == keys.Enter {
		return m, tea.Batch(cmd, m.openCursorConversation())
	}
	m.updateFooterMode()
	return m, cmd
}

// handleComposeKey handles keys while the compose box has focus
func (m *Model) handleComposeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape, keys.Tab:
		return m, m.setFocus(FocusList)
	case keys.Enter:
		return m, m.sendMessage()
	}
	var cmd tea.Cmd
	m.thread, cmd = m.thread.Update(msg)
	return m, cmd
}

// handlePanelKey scrolls the dashboard, team, metrics and settings tabs
func (m *Model) handlePanelKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Home:
		m.panel.GotoTop()
		return m, nil
	case keys.End:
		m.panel.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	return m, cmd
}

// routeScroll sends mouse wheel events to the scrollable area under use
func (m *Model) routeScroll(msg tea.MouseWheelMsg) tea.Cmd {
	if m.modal.IsVisible() || m.ctrl.Role() == controller.RoleNone {
		return nil
	}
	var cmd tea.Cmd
	if m.ctrl.Tab() == controller.TabInbox {
		m.thread, cmd = m.thread.Update(msg)
	} else {
		m.panel, cmd = m.panel.Update(msg)
	}
	return cmd
}
