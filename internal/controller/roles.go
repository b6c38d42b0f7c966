package controller

import (
	"strings"

	"github.com/clinicadigital/omnidesk/internal/errors"
)

// Role is the permission class chosen at the selector screen
type Role string

const (
	RoleNone      Role = ""
	RoleAttendant Role = "attendant"
	RoleManager   Role = "manager"
)

// Roles lists the selectable roles in selector order.
func Roles() []Role {
	return []Role{RoleManager, RoleAttendant}
}

// ParseRole normalizes s into a selectable role.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAttendant, RoleManager:
		return r, nil
	default:
		return RoleNone, errors.InvalidRole(s)
	}
}

// Label returns the Portuguese role name
func (r Role) Label() string {
	switch r {
	case RoleManager:
		return "Gerente"
	case RoleAttendant:
		return "Atendente"
	default:
		return "Nenhum"
	}
}

// Profile is the demo user behind a role, shown on the selector card and in
// the sidebar footer.
type Profile struct {
	Role        Role
	Name        string
	Initials    string
	Description string
	Features    []string
}

var profiles = map[Role]Profile{
	RoleManager: {
		Role:        RoleManager,
		Name:        "Dr. Maria Silva",
		Initials:    "GM",
		Description: "Acesso completo ao dashboard executivo, gerenciamento de equipe e relatórios avançados",
		Features:    []string{"Dashboard Executivo", "Gerenciamento de Equipe", "Relatórios Avançados", "Supervisão em Tempo Real"},
	},
	RoleAttendant: {
		Role:        RoleAttendant,
		Name:        "Ana Costa",
		Initials:    "AT",
		Description: "Interface focada no atendimento, histórico de conversas e ferramentas de produtividade",
		Features:    []string{"Caixa de Entrada Unificada", "Histórico de Pacientes", "Respostas Rápidas", "Agenda Integrada"},
	},
}

// ProfileFor returns the demo profile of a role. RoleNone yields a zero Profile.
func ProfileFor(r Role) Profile {
	p := profiles[r]
	p.Features = append([]string(nil), p.Features...)
	return p
}
