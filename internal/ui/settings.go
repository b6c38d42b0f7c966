package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/clinicadigital/omnidesk/internal/settings"
)

func onOff(b bool) string {
	if b {
		return "Ativado"
	}
	return "Desativado"
}

func integrationColor(s settings.IntegrationStatus) string {
	theme := CurrentTheme()
	switch s {
	case settings.IntegrationConnected:
		return theme.Success
	case settings.IntegrationPending:
		return theme.Warning
	default:
		return theme.Error
	}
}

// RenderSettings shows the current clinic settings and the integration
// status list. Editing happens in the settings modal.
func RenderSettings(s settings.Settings, integrations []settings.Integration, width int) string {
	rows := [][2]string{
		{"Nome da Clínica", s.ClinicName},
		{"E-mail do Administrador", s.AdminEmail},
		{"Horário de Funcionamento", s.WorkingHours},
		{"Tempo Máximo de Espera (minutos)", fmt.Sprintf("%d", s.MaxWaitMinutes)},
		{"Resposta Automática", onOff(s.AutoResponse)},
		{"Notificações por E-mail", onOff(s.EmailNotifications)},
		{"Lembretes por SMS", onOff(s.SMSReminders)},
	}

	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(r[0]))
	}

	var general []string
	for _, r := range rows {
		label := ChartLabelStyle.Render(runewidth.FillRight(r[0], labelWidth))
		general = append(general, label+"  "+ConversationNameStyle.Render(r[1]))
	}

	var integ []string
	for _, in := range integrations {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(integrationColor(in.Status))).Render("●")
		integ = append(integ, dot+" "+runewidth.FillRight(in.Name, 24)+" "+ChartLabelStyle.Render(in.Status.Label()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		Panel("Configurações Gerais", strings.Join(general, "\n"), width),
		Panel("Integrações", strings.Join(integ, "\n"), width),
		ModalHelpStyle.Render("e: editar  ·  b: voltar ao menu"),
	)
}
