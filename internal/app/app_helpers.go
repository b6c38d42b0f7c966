package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/clinicadigital/omnidesk/internal/clipboard"
	"github.com/clinicadigital/omnidesk/internal/controller"
)

// setFocus moves keyboard focus between the conversation list and the
// compose box. Compose focus needs an open conversation.
func (m *Model) setFocus(f Focus) tea.Cmd {
	if f == FocusCompose && !m.thread.HasConversation() {
		f = FocusList
	}
	if m.focus != f {
		m.log.Debug("focus changed", "from", m.focus, "to", f)
	}
	m.focus = f
	m.list.SetFocused(f == FocusList)
	cmd := m.thread.SetFocused(f == FocusCompose)
	m.updateFooterMode()
	return cmd
}

// selectMenuItem opens the idx-th sidebar entry of the current role
func (m *Model) selectMenuItem(idx int) tea.Cmd {
	menu := controller.Menu(m.ctrl.Role())
	if idx < 0 || idx >= len(menu) {
		return nil
	}
	return m.changeTab(menu[idx].Tab)
}

// changeTab switches tabs through the controller
func (m *Model) changeTab(tab controller.Tab) tea.Cmd {
	prev := m.ctrl.Tab()
	if err := m.ctrl.ChangeTab(tab); err != nil {
		return m.flashError(err)
	}
	if tab != prev {
		m.panel.GotoTop()
	}
	if tab != controller.TabInbox {
		m.setFocus(FocusList)
	}
	m.refresh()
	return nil
}

// openCursorConversation makes the row under the list cursor the active
// conversation.
func (m *Model) openCursorConversation() tea.Cmd {
	conv, ok := m.list.Cursor()
	if !ok {
		return nil
	}
	if err := m.ctrl.SelectConversation(conv.ID); err != nil {
		return m.flashError(err)
	}
	m.refresh()
	return nil
}

// sendMessage posts the compose box text into the active conversation. The
// draft is kept when the controller rejects it.
func (m *Model) sendMessage() tea.Cmd {
	msg, err := m.ctrl.SendMessage(m.thread.InputValue())
	if err != nil {
		return m.flashError(err)
	}
	m.log.Debug("message sent", "conversationID", msg.ConversationID, "channel", msg.Channel)
	m.thread.ClearInput()
	m.refresh()
	return nil
}

// copyLastMessage puts the newest message of the open thread on the clipboard
func (m *Model) copyLastMessage() tea.Cmd {
	id := m.ctrl.ActiveConversationID()
	last, ok := m.ctrl.Threads().Last(id)
	if !ok {
		return m.ShowFlashWarning("Nenhuma mensagem para copiar")
	}
	if err := clipboard.WriteText(last.Content); err != nil {
		m.log.Warn("copy failed", "error", err)
		return m.ShowFlashError("Não foi possível copiar a mensagem")
	}
	return m.ShowFlashSuccess("Mensagem copiada")
}
