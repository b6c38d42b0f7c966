package ui

import (
	"strings"
	"testing"

	"github.com/clinicadigital/omnidesk/internal/settings"
	"github.com/clinicadigital/omnidesk/internal/ui/modals"
)

func TestModal_ShowHide(t *testing.T) {
	m := NewModal()
	if m.IsVisible() {
		t.Fatal("new modal should be hidden")
	}
	if m.View(100, 40) != "" {
		t.Error("hidden modal should render nothing")
	}

	m.Show(modals.NewSettingsState(settings.Defaults()))
	m.SetError("horário inválido")
	if !m.IsVisible() || m.GetError() != "horário inválido" {
		t.Fatalf("visible=%v error=%q", m.IsVisible(), m.GetError())
	}

	view := stripANSI(m.View(100, 40))
	for _, want := range []string{"Configurações do Sistema", "horário inválido"} {
		if !strings.Contains(view, want) {
			t.Errorf("modal view missing %q", want)
		}
	}

	m.Hide()
	if m.IsVisible() || m.GetError() != "" {
		t.Error("Hide() should clear state and error")
	}
}

func TestModal_ShowClearsError(t *testing.T) {
	m := NewModal()
	m.Show(modals.NewHelpState(nil))
	m.SetError("falhou")
	m.Show(modals.NewHelpState(nil))
	if m.GetError() != "" {
		t.Errorf("Show() kept error %q", m.GetError())
	}
}

func TestModal_UpdateHidden(t *testing.T) {
	m := NewModal()
	if _, cmd := m.Update(keyPress("a")); cmd != nil {
		t.Error("hidden modal should not produce commands")
	}
}
