package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/clinicadigital/omnidesk/internal/keys"
	"github.com/clinicadigital/omnidesk/internal/ui/modals"
)

// handleModalKey dispatches key events to the appropriate modal handler
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch s := m.modal.State.(type) {
	case *modals.SettingsState:
		return m.handleSettingsModal(msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(msg, s)
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleSettingsModal saves on enter (or ctrl+s) and discards on escape.
// Rejected settings keep the modal open with the reason underneath.
func (m *Model) handleSettingsModal(msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter, keys.CtrlS:
		if !state.Changed() {
			m.modal.Hide()
			return m, nil
		}
		next, err := state.Result()
		if err == nil {
			err = m.settings.Save(next)
		}
		if err != nil {
			m.log.Debug("settings not saved", "error", err)
			m.modal.SetError(err.Error())
			return m, nil
		}
		m.modal.Hide()
		m.refresh()
		return m, m.ShowFlashSuccess("Configurações salvas")
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal closes on escape and runs the highlighted shortcut on enter.
// While the list filter is being typed both keys belong to the list.
func (m *Model) handleHelpModal(msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	if !state.IsFiltering() {
		switch msg.String() {
		case keys.Escape, "?", "q":
			m.modal.Hide()
			return m, nil
		case keys.Enter:
			selected := state.SelectedShortcut()
			m.modal.Hide()
			if selected == nil {
				return m, nil
			}
			s, ok := shortcutForDisplayKey(selected.Key)
			if !ok || !m.isShortcutApplicable(s) {
				return m, nil
			}
			return s.Handler(m)
		}
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
