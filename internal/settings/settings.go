// Package settings holds the clinic's service settings edited from the
// settings tab. Nothing is persisted: saving replaces the in-memory copy.
package settings

import (
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/clinicadigital/omnidesk/internal/errors"
	"github.com/clinicadigital/omnidesk/internal/logger"
)

// Settings is the editable clinic configuration
type Settings struct {
	ClinicName         string `json:"clinic_name"`
	AdminEmail         string `json:"admin_email"`
	WorkingHours       string `json:"working_hours"` // "HH:MM-HH:MM"
	MaxWaitMinutes     int    `json:"max_wait_minutes"`
	AutoResponse       bool   `json:"auto_response"`
	EmailNotifications bool   `json:"email_notifications"`
	SMSReminders       bool   `json:"sms_reminders"`
}

// Defaults returns the settings a fresh clinic starts with.
func Defaults() Settings {
	return Settings{
		ClinicName:         "Clínica Digital",
		AdminEmail:         "admin@clinicadigital.com",
		WorkingHours:       "08:00-18:00",
		MaxWaitMinutes:     5,
		AutoResponse:       true,
		EmailNotifications: true,
		SMSReminders:       false,
	}
}

// Validate checks field formats. It does not modify s.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.ClinicName) == "" {
		return errors.SettingsInvalid("clinic name is required")
	}
	if _, err := mail.ParseAddress(s.AdminEmail); err != nil {
		return errors.SettingsInvalid(fmt.Sprintf("invalid admin e-mail %q", s.AdminEmail))
	}
	if _, _, err := ParseHours(s.WorkingHours); err != nil {
		return err
	}
	if s.MaxWaitMinutes <= 0 {
		return errors.SettingsInvalid(fmt.Sprintf("max wait must be positive, got %d", s.MaxWaitMinutes))
	}
	return nil
}

// ParseHours parses "HH:MM-HH:MM" into offsets from midnight. The range must
// not be empty or wrap past midnight.
func ParseHours(s string) (opens, closes time.Duration, err error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return 0, 0, errors.SettingsInvalid(fmt.Sprintf("working hours %q must look like 08:00-18:00", s))
	}
	opens, err = parseClock(parts[0])
	if err != nil {
		return 0, 0, err
	}
	closes, err = parseClock(parts[1])
	if err != nil {
		return 0, 0, err
	}
	if closes <= opens {
		return 0, 0, errors.SettingsInvalid(fmt.Sprintf("working hours %q end before they start", s))
	}
	return opens, closes, nil
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, errors.SettingsInvalid(fmt.Sprintf("invalid time %q", s))
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// IsOpen reports whether t falls inside the working hours. Invalid hours are
// treated as always open.
func (s Settings) IsOpen(t time.Time) bool {
	opens, closes, err := ParseHours(s.WorkingHours)
	if err != nil {
		return true
	}
	offset := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
	return offset >= opens && offset < closes
}

// AutoReply returns the automatic answer for a patient who just got in touch
// at t, or false when automatic responses are off.
func (s Settings) AutoReply(t time.Time) (string, bool) {
	if !s.AutoResponse {
		return "", false
	}
	if s.IsOpen(t) {
		return fmt.Sprintf("Olá! Você está falando com a %s. Um atendente vai responder em até %d minutos.",
			s.ClinicName, s.MaxWaitMinutes), true
	}
	return fmt.Sprintf("Olá! Nosso horário de atendimento é %s. Responderemos assim que possível.",
		s.WorkingHours), true
}

// Store holds the current settings. Last write wins.
type Store struct {
	mu      sync.RWMutex
	current Settings
	saves   int
	log     *slog.Logger
}

// NewStore creates a store holding initial
func NewStore(initial Settings) *Store {
	return &Store{current: initial, log: logger.WithComponent("settings")}
}

// Get returns a copy of the current settings
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Save validates next and replaces the current settings with it. Invalid
// settings are rejected and the previous value is kept.
func (s *Store) Save(next Settings) error {
	if err := next.Validate(); err != nil {
		s.log.Warn("settings rejected", "error", err)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = next
	s.saves++
	s.log.Info("settings saved", "clinic", next.ClinicName, "hours", next.WorkingHours, "autoResponse", next.AutoResponse)
	return nil
}

// Saves returns how many times Save succeeded
func (s *Store) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
