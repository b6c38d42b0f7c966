package modals

import (
	"strings"
	"testing"

	"github.com/clinicadigital/omnidesk/internal/errors"
	"github.com/clinicadigital/omnidesk/internal/settings"
)

func TestSettingsState_ResultMatchesOriginal(t *testing.T) {
	s := NewSettingsState(settings.Defaults())

	got, err := s.Result()
	if err != nil {
		t.Fatalf("Result() error: %v", err)
	}
	if got != settings.Defaults() {
		t.Errorf("Result() = %+v, want defaults", got)
	}
	if s.Changed() {
		t.Error("untouched form should not report a change")
	}
}

func TestSettingsState_ResultReflectsEdits(t *testing.T) {
	s := NewSettingsState(settings.Defaults())
	s.clinicName = "  Clínica Vida  "
	s.workingHours = "07:00-19:00"
	s.maxWait = "10"
	s.options = []string{optionSMS}

	got, err := s.Result()
	if err != nil {
		t.Fatalf("Result() error: %v", err)
	}
	if got.ClinicName != "Clínica Vida" {
		t.Errorf("ClinicName = %q, want trimmed", got.ClinicName)
	}
	if got.WorkingHours != "07:00-19:00" || got.MaxWaitMinutes != 10 {
		t.Errorf("hours/wait = %q/%d", got.WorkingHours, got.MaxWaitMinutes)
	}
	if got.AutoResponse || got.EmailNotifications || !got.SMSReminders {
		t.Errorf("toggles = %v/%v/%v, want false/false/true", got.AutoResponse, got.EmailNotifications, got.SMSReminders)
	}
	if !s.Changed() {
		t.Error("edited form should report a change")
	}
}

func TestSettingsState_NonNumericWait(t *testing.T) {
	s := NewSettingsState(settings.Defaults())
	s.maxWait = "cinco"

	if _, err := s.Result(); !errors.Is(err, errors.KindInvalid) {
		t.Errorf("Result() error = %v, want KindInvalid", err)
	}
}

func TestSettingsState_Validators(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) error
		in   string
		ok   bool
	}{
		{"hours valid", validateHours, "08:00-18:00", true},
		{"hours reversed", validateHours, "18:00-08:00", false},
		{"hours garbage", validateHours, "manhã", false},
		{"wait valid", validateWait, "5", true},
		{"wait zero", validateWait, "0", false},
		{"wait text", validateWait, "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(tt.in); (err == nil) != tt.ok {
				t.Errorf("got err=%v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestSettingsState_Render(t *testing.T) {
	s := NewSettingsState(settings.Defaults())
	out := s.Render()
	for _, want := range []string{"Configurações do Sistema", "Nome da Clínica", "Horário de Funcionamento"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}
