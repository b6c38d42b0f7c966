package controller

import (
	"testing"

	"github.com/clinicadigital/omnidesk/internal/errors"
)

func TestPermissionTable(t *testing.T) {
	tests := []struct {
		role Role
		want []Tab
	}{
		{RoleManager, []Tab{TabDashboard, TabInbox, TabTeam, TabMetrics, TabSettings}},
		{RoleAttendant, []Tab{TabInbox, TabHistory, TabCalendar}},
		{RoleNone, []Tab{}},
	}

	for _, tt := range tests {
		t.Run(tt.role.Label(), func(t *testing.T) {
			got := Tabs(tt.role)
			if len(got) != len(tt.want) {
				t.Fatalf("Tabs(%q) = %v, want %v", tt.role, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tabs(%q)[%d] = %q, want %q", tt.role, i, got[i], tt.want[i])
				}
				if !Allowed(tt.role, got[i]) {
					t.Errorf("Allowed(%q, %q) = false", tt.role, got[i])
				}
			}
		})
	}
}

func TestAllowed_Denies(t *testing.T) {
	for _, tab := range []Tab{TabDashboard, TabTeam, TabMetrics, TabSettings} {
		if Allowed(RoleAttendant, tab) {
			t.Errorf("attendant should not reach %q", tab)
		}
	}
	for _, tab := range []Tab{TabHistory, TabCalendar} {
		if Allowed(RoleManager, tab) {
			t.Errorf("manager should not reach %q", tab)
		}
	}
}

func TestMenu_ReturnsCopy(t *testing.T) {
	m := Menu(RoleManager)
	m[0].Label = "changed"
	if Menu(RoleManager)[0].Label != "Dashboard" {
		t.Error("Menu() should not expose the permission table")
	}
}

func TestTabTitleAndLabel(t *testing.T) {
	tests := []struct {
		tab   Tab
		title string
		label string
	}{
		{TabDashboard, "Dashboard Executivo", "Dashboard"},
		{TabInbox, "Caixa de Entrada", "Caixa de Entrada"},
		{TabSettings, "Configurações do Sistema", "Configurações"},
		{TabCalendar, "Sistema Omnichannel", "Agenda"},
		{Tab("x"), "Sistema Omnichannel", "x"},
	}
	for _, tt := range tests {
		if got := tt.tab.Title(); got != tt.title {
			t.Errorf("%q.Title() = %q, want %q", tt.tab, got, tt.title)
		}
		if got := tt.tab.Label(); got != tt.label {
			t.Errorf("%q.Label() = %q, want %q", tt.tab, got, tt.label)
		}
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"manager", RoleManager, false},
		{" Attendant ", RoleAttendant, false},
		{"", RoleNone, true},
		{"admin", RoleNone, true},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if tt.wantErr {
			if !errors.Is(err, errors.KindInvalid) {
				t.Errorf("ParseRole(%q) error = %v, want invalid", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseRole(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestProfileFor(t *testing.T) {
	p := ProfileFor(RoleManager)
	if p.Name != "Dr. Maria Silva" || p.Initials != "GM" || len(p.Features) != 4 {
		t.Errorf("manager profile = %+v", p)
	}
	p.Features[0] = "changed"
	if ProfileFor(RoleManager).Features[0] == "changed" {
		t.Error("ProfileFor should copy features")
	}
	if ProfileFor(RoleAttendant).Name != "Ana Costa" {
		t.Error("attendant profile name")
	}
}
