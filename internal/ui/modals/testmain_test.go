package modals

import (
	"os"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/clinicadigital/omnidesk/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	SetStyles(
		lipgloss.NewStyle().Bold(true), lipgloss.NewStyle().Italic(true), lipgloss.NewStyle().Bold(true),
		lipgloss.Color("#2563EB"), lipgloss.Color("#14B8A6"), lipgloss.Color("#F8FAFC"),
		lipgloss.Color("#94A3B8"), lipgloss.Color("#0F172A"), lipgloss.Color("#F59E0B"),
		50, 120, 64,
	)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
