package ui

import (
	"strings"
	"testing"

	"github.com/clinicadigital/omnidesk/internal/dashboard"
)

func TestRenderCards(t *testing.T) {
	view := stripANSI(RenderCards(dashboard.DemoProvider{}.Cards(), 120))

	for _, want := range []string{"Conversas Ativas", "28", "+12%", "8%", "Consultas Agendadas"} {
		if !strings.Contains(view, want) {
			t.Errorf("cards missing %q", want)
		}
	}
	if RenderCards(nil, 120) != "" {
		t.Error("no cards should render nothing")
	}
}

func TestRenderActivity(t *testing.T) {
	view := stripANSI(RenderActivity(dashboard.DemoProvider{}.Hourly(), 80))

	for _, want := range []string{"Atividade por Hora", "08:00", "16:00", "52"} {
		if !strings.Contains(view, want) {
			t.Errorf("activity chart missing %q", want)
		}
	}
}

func TestRenderChannels(t *testing.T) {
	view := stripANSI(RenderChannels(dashboard.DemoProvider{}.Channels(), 80))

	for _, want := range []string{"Distribuição por Canal", "WhatsApp", "156", "Site", "23"} {
		if !strings.Contains(view, want) {
			t.Errorf("channel chart missing %q", want)
		}
	}
}

func TestRenderTeam(t *testing.T) {
	view := stripANSI(RenderTeam(dashboard.DemoProvider{}.Team(), 140))

	for _, want := range []string{"Performance da Equipe", "2/4 online", "Ana Costa", "Disponível", "Ausente", "1m 30s"} {
		if !strings.Contains(view, want) {
			t.Errorf("team panel missing %q", want)
		}
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		name              string
		value, peak, want int
	}{
		{"full", 10, 10, 20},
		{"half", 5, 10, 10},
		{"tiny value still shows", 1, 1000, 1},
		{"zero", 0, 10, 0},
		{"no peak", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Count(stripANSI(bar(tt.value, tt.peak, 20, "#FFFFFF")), "█")
			if got != tt.want {
				t.Errorf("bar(%d, %d) = %d blocks, want %d", tt.value, tt.peak, got, tt.want)
			}
		})
	}
}

func TestRenderPlaceholder(t *testing.T) {
	view := stripANSI(RenderPlaceholder(60, 12))
	if !strings.Contains(view, "Em Desenvolvimento") {
		t.Errorf("placeholder = %q", view)
	}
}
