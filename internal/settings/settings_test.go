package settings

import (
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/clinicadigital/omnidesk/internal/errors"
	"github.com/clinicadigital/omnidesk/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

func TestDefaults_AreValid(t *testing.T) {
	d := Defaults()
	if err := d.Validate(); err != nil {
		t.Fatalf("Defaults().Validate() error = %v", err)
	}
	if d.ClinicName != "Clínica Digital" || d.WorkingHours != "08:00-18:00" || d.MaxWaitMinutes != 5 {
		t.Errorf("Defaults() = %+v", d)
	}
	if !d.AutoResponse || !d.EmailNotifications || d.SMSReminders {
		t.Errorf("default toggles = %+v", d)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		ok     bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"late shift", func(s *Settings) { s.WorkingHours = "13:30-22:00" }, true},
		{"spaces around range", func(s *Settings) { s.WorkingHours = " 08:00 - 18:00 " }, true},
		{"missing dash", func(s *Settings) { s.WorkingHours = "08:00 18:00" }, false},
		{"bad clock", func(s *Settings) { s.WorkingHours = "8h-18h" }, false},
		{"hour out of range", func(s *Settings) { s.WorkingHours = "08:00-25:00" }, false},
		{"reversed", func(s *Settings) { s.WorkingHours = "18:00-08:00" }, false},
		{"empty range", func(s *Settings) { s.WorkingHours = "09:00-09:00" }, false},
		{"zero wait", func(s *Settings) { s.MaxWaitMinutes = 0 }, false},
		{"negative wait", func(s *Settings) { s.MaxWaitMinutes = -1 }, false},
		{"blank clinic", func(s *Settings) { s.ClinicName = "  " }, false},
		{"bad email", func(s *Settings) { s.AdminEmail = "admin" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.modify(&s)
			err := s.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if !tt.ok && !errors.Is(err, errors.KindInvalid) {
				t.Errorf("Validate() error = %v, want invalid", err)
			}
		})
	}
}

func TestParseHours(t *testing.T) {
	opens, closes, err := ParseHours("08:00-18:30")
	if err != nil {
		t.Fatalf("ParseHours() error = %v", err)
	}
	if opens != 8*time.Hour || closes != 18*time.Hour+30*time.Minute {
		t.Errorf("ParseHours() = %v, %v", opens, closes)
	}
}

func TestIsOpen(t *testing.T) {
	s := Defaults()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		at   time.Time
		want bool
	}{
		{day.Add(7*time.Hour + 59*time.Minute), false},
		{day.Add(8 * time.Hour), true},
		{day.Add(17*time.Hour + 59*time.Minute), true},
		{day.Add(18 * time.Hour), false},
	}
	for _, tt := range tests {
		if got := s.IsOpen(tt.at); got != tt.want {
			t.Errorf("IsOpen(%s) = %v, want %v", tt.at.Format("15:04"), got, tt.want)
		}
	}

	s.WorkingHours = "garbage"
	if !s.IsOpen(day) {
		t.Error("invalid hours should be treated as open")
	}
}

func TestAutoReply(t *testing.T) {
	s := Defaults()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	msg, ok := s.AutoReply(day.Add(10 * time.Hour))
	if !ok || !strings.Contains(msg, "5 minutos") || !strings.Contains(msg, "Clínica Digital") {
		t.Errorf("AutoReply(open) = %q, %v", msg, ok)
	}

	msg, ok = s.AutoReply(day.Add(22 * time.Hour))
	if !ok || !strings.Contains(msg, "08:00-18:00") {
		t.Errorf("AutoReply(closed) = %q, %v", msg, ok)
	}

	s.AutoResponse = false
	if _, ok := s.AutoReply(day.Add(10 * time.Hour)); ok {
		t.Error("AutoReply should be off when AutoResponse is false")
	}
}

func TestStore_SaveLastWriteWins(t *testing.T) {
	store := NewStore(Defaults())

	first := Defaults()
	first.ClinicName = "Clínica Primeira"
	second := Defaults()
	second.ClinicName = "Clínica Segunda"
	second.SMSReminders = true

	if err := store.Save(first); err != nil {
		t.Fatalf("Save(first) error = %v", err)
	}
	if err := store.Save(second); err != nil {
		t.Fatalf("Save(second) error = %v", err)
	}
	if got := store.Get(); got != second {
		t.Errorf("Get() = %+v, want %+v", got, second)
	}
	if store.Saves() != 2 {
		t.Errorf("Saves() = %d, want 2", store.Saves())
	}
}

func TestStore_RejectsInvalid(t *testing.T) {
	store := NewStore(Defaults())
	bad := Defaults()
	bad.WorkingHours = "18:00-08:00"

	if err := store.Save(bad); err == nil {
		t.Fatal("Save() should reject invalid settings")
	}
	if got := store.Get(); got != Defaults() {
		t.Errorf("Get() = %+v, want defaults kept", got)
	}
	if store.Saves() != 0 {
		t.Errorf("Saves() = %d, want 0", store.Saves())
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore(Defaults())
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s := Defaults()
			s.MaxWaitMinutes = n + 1
			store.Save(s)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.Get()
		}()
	}
	wg.Wait()
	if store.Saves() != 10 {
		t.Errorf("Saves() = %d, want 10", store.Saves())
	}
}

func TestIntegrations(t *testing.T) {
	list := Integrations()
	if len(list) != 5 {
		t.Fatalf("len = %d, want 5", len(list))
	}
	if list[4].Status.Label() != "Pendente" || list[2].Status.Label() != "Desconectado" || list[0].Status.Label() != "Conectado" {
		t.Errorf("Integrations() = %+v", list)
	}
}
