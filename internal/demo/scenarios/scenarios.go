// Package scenarios contains the built-in demo scenarios for omnidesk.
package scenarios

import (
	"time"

	"github.com/clinicadigital/omnidesk/internal/channel"
	"github.com/clinicadigital/omnidesk/internal/controller"
	"github.com/clinicadigital/omnidesk/internal/demo"
)

// Overview walks a manager through every tab:
// - Choosing the manager profile at the selector
// - The executive dashboard with live inbox numbers
// - The inbox, team, metrics and settings tabs
var Overview = &demo.Scenario{
	Name:        "overview",
	Description: "Manager tour: profile selector, dashboard, inbox, team, metrics, settings",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Annotate("Escolha do perfil de acesso"),
		demo.Wait(1 * time.Second),

		// Manager is the first card
		demo.KeyWithDesc("enter", "Enter as manager"),
		demo.Annotate("Dashboard executivo"),
		demo.Wait(2 * time.Second),

		demo.KeyWithDesc("2", "Open the inbox"),
		demo.Key("enter"),
		demo.Annotate("Caixa de entrada com a conversa aberta"),
		demo.Wait(2 * time.Second),

		demo.KeyWithDesc("3", "Team"),
		demo.Wait(1500 * time.Millisecond),

		demo.KeyWithDesc("4", "Metrics"),
		demo.Wait(1500 * time.Millisecond),

		demo.KeyWithDesc("5", "Settings"),
		demo.Wait(1500 * time.Millisecond),

		demo.KeyWithDesc("e", "Edit settings"),
		demo.Annotate("Edição das configurações"),
		demo.Wait(2 * time.Second),
		demo.Key("esc"),

		demo.KeyWithDesc("b", "Back to the dashboard"),
		demo.Wait(2 * time.Second),
	},
}

// Attendant shows a working shift in the inbox:
// - Opening a conversation and answering it
// - A new contact arriving and getting the automatic answer
// - Searching for a contact
var Attendant = &demo.Scenario{
	Name:        "attendant",
	Description: "Attendant shift: reply to a patient, receive a new contact, search the inbox",
	Width:       120,
	Height:      40,
	Setup:       &demo.ScenarioSetup{Role: controller.RoleAttendant},
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),

		// Maria is at the top of the list
		demo.KeyWithDesc("enter", "Open Maria's conversation"),
		demo.Wait(1 * time.Second),

		demo.KeyWithDesc("tab", "Focus the compose box"),
		demo.Type("Perfeito, Maria! Sua consulta está remarcada para terça às 10h."),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),
		demo.KeyWithDesc("enter", "Send"),
		demo.Annotate("Mensagem enviada"),
		demo.Wait(1500 * time.Millisecond),
		demo.Key("esc"),

		demo.Annotate("Novo contato pelo site recebe resposta automática"),
		demo.NewContact("Fernanda Lima", channel.Website, "Gostaria de agendar uma consulta com dermatologista."),
		demo.Wait(1500 * time.Millisecond),

		demo.Inbound("2", "Preciso levar os exames anteriores também?"),
		demo.Wait(1 * time.Second),

		demo.KeyWithDesc("/", "Search"),
		demo.Type("fernanda"),
		demo.Key("enter"),
		demo.Annotate("Busca por contato"),
		demo.Wait(2 * time.Second),
	},
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Overview,
		Attendant,
	}
}

// ByName returns a scenario by name, or nil if not found.
func ByName(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
