package modals

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/clinicadigital/omnidesk/internal/errors"
	"github.com/clinicadigital/omnidesk/internal/settings"
)

const (
	optionAutoResponse = "auto-response"
	optionEmail        = "email"
	optionSMS          = "sms"
)

// SettingsState edits the clinic settings through a huh form.
type SettingsState struct {
	Original settings.Settings

	clinicName   string
	adminEmail   string
	workingHours string
	maxWait      string
	options      []string

	form *huh.Form
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Configurações do Sistema" }

func (s *SettingsState) Help() string {
	return "Tab: próximo campo  Enter: salvar  Esc: cancelar"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Result converts the form fields into settings. Field formats are checked
// by the store on save; only the numeric conversion fails here.
func (s *SettingsState) Result() (settings.Settings, error) {
	wait, err := strconv.Atoi(strings.TrimSpace(s.maxWait))
	if err != nil {
		return settings.Settings{}, errors.SettingsInvalid(fmt.Sprintf("max wait %q is not a number", s.maxWait))
	}
	return settings.Settings{
		ClinicName:         strings.TrimSpace(s.clinicName),
		AdminEmail:         strings.TrimSpace(s.adminEmail),
		WorkingHours:       strings.TrimSpace(s.workingHours),
		MaxWaitMinutes:     wait,
		AutoResponse:       slices.Contains(s.options, optionAutoResponse),
		EmailNotifications: slices.Contains(s.options, optionEmail),
		SMSReminders:       slices.Contains(s.options, optionSMS),
	}, nil
}

// Changed reports whether any field differs from the original settings
func (s *SettingsState) Changed() bool {
	next, err := s.Result()
	return err != nil || next != s.Original
}

func validateHours(v string) error {
	_, _, err := settings.ParseHours(v)
	return err
}

func validateWait(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return fmt.Errorf("informe um número de minutos maior que zero")
	}
	return nil
}

// NewSettingsState creates the form pre-filled with current
func NewSettingsState(current settings.Settings) *SettingsState {
	s := &SettingsState{
		Original:     current,
		clinicName:   current.ClinicName,
		adminEmail:   current.AdminEmail,
		workingHours: current.WorkingHours,
		maxWait:      strconv.Itoa(current.MaxWaitMinutes),
	}

	opts := []huh.Option[string]{
		huh.NewOption("Resposta Automática", optionAutoResponse).Selected(current.AutoResponse),
		huh.NewOption("Notificações por E-mail", optionEmail).Selected(current.EmailNotifications),
		huh.NewOption("Lembretes por SMS", optionSMS).Selected(current.SMSReminders),
	}
	if current.AutoResponse {
		s.options = append(s.options, optionAutoResponse)
	}
	if current.EmailNotifications {
		s.options = append(s.options, optionEmail)
	}
	if current.SMSReminders {
		s.options = append(s.options, optionSMS)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nome da Clínica").
				CharLimit(ModalInputCharLimit).
				Value(&s.clinicName),
			huh.NewInput().
				Title("E-mail do Administrador").
				CharLimit(ModalInputCharLimit).
				Value(&s.adminEmail),
			huh.NewInput().
				Title("Horário de Funcionamento").
				Description("Formato HH:MM-HH:MM").
				Placeholder("08:00-18:00").
				Validate(validateHours).
				Value(&s.workingHours),
			huh.NewInput().
				Title("Tempo Máximo de Espera (minutos)").
				Validate(validateWait).
				Value(&s.maxWait),
			huh.NewMultiSelect[string]().
				Title("Automação e Notificações").
				Options(opts...).
				Height(len(opts)).
				Value(&s.options),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
