package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/clinicadigital/omnidesk/internal/errors"
	"github.com/clinicadigital/omnidesk/internal/settings"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvTheme, EnvNotifications, EnvSimulate, EnvClinicName} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := LoadFrom(filepath.Join(dir, "config.json"), filepath.Join(dir, ".env"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.GetTheme() != DefaultTheme {
		t.Errorf("GetTheme() = %q, want %q", cfg.GetTheme(), DefaultTheme)
	}
	if !cfg.SimulatorEnabled() || cfg.SimulatorInterval() != 20*time.Second {
		t.Errorf("simulator = %v / %v", cfg.SimulatorEnabled(), cfg.SimulatorInterval())
	}
	if cfg.GetNotificationsEnabled() {
		t.Error("notifications should be off by default")
	}
	if cfg.InitialSettings() != settings.Defaults() {
		t.Errorf("InitialSettings() = %+v", cfg.InitialSettings())
	}
}

func TestLoadFrom_File(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", `{
  "theme": "nord",
  "notifications_enabled": true,
  "simulator": {"enabled": false, "interval_seconds": 5},
  "clinic": {
    "clinic_name": "Clínica Boa Saúde",
    "admin_email": "contato@boasaude.com",
    "working_hours": "07:00-19:00",
    "max_wait_minutes": 10,
    "auto_response": false
  }
}`)

	cfg, err := LoadFrom(path, "")
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.GetTheme() != ThemeNord || !cfg.GetNotificationsEnabled() {
		t.Errorf("theme/notifications = %q/%v", cfg.GetTheme(), cfg.GetNotificationsEnabled())
	}
	if cfg.SimulatorEnabled() || cfg.SimulatorInterval() != 5*time.Second {
		t.Errorf("simulator = %v / %v", cfg.SimulatorEnabled(), cfg.SimulatorInterval())
	}
	s := cfg.InitialSettings()
	if s.ClinicName != "Clínica Boa Saúde" || s.MaxWaitMinutes != 10 || s.AutoResponse {
		t.Errorf("InitialSettings() = %+v", s)
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q", cfg.FilePath())
	}
}

func TestLoadFrom_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kind    errors.Kind
	}{
		{"malformed json", `{"theme": `, errors.KindConfig},
		{"unknown theme", `{"theme": "solarized"}`, errors.KindInvalid},
		{"negative interval", `{"simulator": {"enabled": true, "interval_seconds": -1}}`, errors.KindInvalid},
		{"bad clinic hours", `{"clinic": {"clinic_name": "X", "admin_email": "a@b.com", "working_hours": "nope", "max_wait_minutes": 1}}`, errors.KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := writeFile(t, t.TempDir(), "config.json", tt.content)
			_, err := LoadFrom(path, "")
			if !errors.Is(err, tt.kind) {
				t.Errorf("LoadFrom() error = %v, want kind %v", err, tt.kind)
			}
		})
	}
}

func TestLoadFrom_EnvFileOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", `{"theme": "nord"}`)
	envFile := writeFile(t, dir, ".env", "OMNIDESK_THEME=dracula\nOMNIDESK_NOTIFICATIONS=true\nOMNIDESK_SIMULATE=false\nOMNIDESK_CLINIC_NAME=\"Clínica Centro\"\n")

	cfg, err := LoadFrom(path, envFile)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.GetTheme() != ThemeDracula {
		t.Errorf("GetTheme() = %q, want dracula", cfg.GetTheme())
	}
	if !cfg.GetNotificationsEnabled() || cfg.SimulatorEnabled() {
		t.Errorf("notifications/simulator = %v/%v", cfg.GetNotificationsEnabled(), cfg.SimulatorEnabled())
	}
	if got := cfg.InitialSettings().ClinicName; got != "Clínica Centro" {
		t.Errorf("ClinicName = %q", got)
	}
}

func TestLoadFrom_ProcessEnvWinsOverEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "OMNIDESK_THEME=dracula\n")
	t.Setenv(EnvTheme, "LIGHT")

	cfg, err := LoadFrom(filepath.Join(dir, "missing.json"), envFile)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.GetTheme() != ThemeLight {
		t.Errorf("GetTheme() = %q, want light", cfg.GetTheme())
	}
}

func TestLoadFrom_BadBooleanEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSimulate, "sometimes")

	_, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"), "")
	if !errors.Is(err, errors.KindInvalid) {
		t.Errorf("LoadFrom() error = %v, want invalid", err)
	}
}

func TestKnownThemes(t *testing.T) {
	themes := KnownThemes()
	if len(themes) != 4 || themes[0] != DefaultTheme {
		t.Errorf("KnownThemes() = %v", themes)
	}
}

func TestConfig_ConcurrentAccess(t *testing.T) {
	cfg := Default()
	cfg.ensureInitialized()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			cfg.SetNotificationsEnabled(n%2 == 0)
			cfg.SetSimulatorEnabled(n%3 == 0)
		}(i)
		go func() {
			defer wg.Done()
			_ = cfg.GetNotificationsEnabled()
			_ = cfg.SimulatorEnabled()
			_ = cfg.InitialSettings()
			_ = cfg.Validate()
		}()
	}
	wg.Wait()
}
