package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/clinicadigital/omnidesk/internal/errors"
	"github.com/clinicadigital/omnidesk/internal/ui"
)

// ShowFlash displays a flash message in the footer and returns a command to start the auto-dismiss timer
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashWarning displays a warning flash message
func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}

// ShowFlashInfo displays an info flash message
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}

// flashText turns a rejected action into the footer message for its kind
func flashText(err error) (string, ui.FlashType) {
	switch errors.GetKind(err) {
	case errors.KindEmptyContent:
		return "Digite uma mensagem antes de enviar", ui.FlashWarning
	case errors.KindNotFound:
		return "Conversa não encontrada", ui.FlashWarning
	case errors.KindForbiddenTab:
		return "Seu perfil não tem acesso a esta área", ui.FlashError
	case errors.KindUnknownChannel:
		return "Canal desconhecido", ui.FlashError
	default:
		return err.Error(), ui.FlashError
	}
}

// flashError shows err in the footer. The controller already logged it.
func (m *Model) flashError(err error) tea.Cmd {
	text, kind := flashText(err)
	return m.ShowFlash(text, kind)
}
