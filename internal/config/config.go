package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"github.com/clinicadigital/omnidesk/internal/errors"
	"github.com/clinicadigital/omnidesk/internal/settings"
)

// Theme names understood by the UI
const (
	ThemeClinic  = "clinica"
	ThemeNord    = "nord"
	ThemeDracula = "dracula"
	ThemeLight   = "light"
)

// DefaultTheme is used when no theme is configured
const DefaultTheme = ThemeClinic

// KnownThemes lists the valid theme names in display order
func KnownThemes() []string {
	return []string{ThemeClinic, ThemeNord, ThemeDracula, ThemeLight}
}

// Environment variables that override the config file
const (
	EnvTheme         = "OMNIDESK_THEME"
	EnvNotifications = "OMNIDESK_NOTIFICATIONS"
	EnvSimulate      = "OMNIDESK_SIMULATE"
	EnvClinicName    = "OMNIDESK_CLINIC_NAME"
)

// Simulator configures the scripted inbound traffic
type Simulator struct {
	Enabled         bool `json:"enabled"`
	IntervalSeconds int  `json:"interval_seconds,omitempty"`
}

// Config holds the application configuration. The file is read at startup
// and never written back.
type Config struct {
	Theme                string             `json:"theme,omitempty"`
	NotificationsEnabled bool               `json:"notifications_enabled,omitempty"` // Desktop notifications on inbound messages
	Simulator            Simulator          `json:"simulator"`
	Clinic               *settings.Settings `json:"clinic,omitempty"` // Initial settings; defaults when absent

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".omnidesk"), nil
}

// Path returns the path to the config file
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Theme:     DefaultTheme,
		Simulator: Simulator{Enabled: true, IntervalSeconds: 20},
	}
}

// Load reads ~/.omnidesk/config.json and applies overrides from a .env file
// in the working directory and the process environment.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.omnidesk/config.json", err)
	}
	return LoadFrom(path, ".env")
}

// LoadFrom reads the config file at path, then applies envFile and the
// process environment. Missing files are not an error. Variables already set
// in the environment win over the .env file.
func LoadFrom(path, envFile string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.ConfigLoadFailed(path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	}

	fileEnv := map[string]string{}
	if envFile != "" {
		if m, err := godotenv.Read(envFile); err == nil {
			fileEnv = m
		} else if !os.IsNotExist(err) {
			return nil, errors.ConfigLoadFailed(envFile, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	cfg.ensureInitialized()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvTheme); ok && v != "" {
		c.Theme = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvNotifications); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("%s: %q is not a boolean", EnvNotifications, v))
		}
		c.NotificationsEnabled = b
	}
	if v, ok := lookup(EnvSimulate); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("%s: %q is not a boolean", EnvSimulate, v))
		}
		c.Simulator.Enabled = b
	}
	if v, ok := lookup(EnvClinicName); ok && strings.TrimSpace(v) != "" {
		if c.Clinic == nil {
			d := settings.Defaults()
			c.Clinic = &d
		}
		c.Clinic.ClinicName = strings.TrimSpace(v)
	}
	return nil
}

// ensureInitialized fills zero values left by a partial file.
// Must only be called before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Simulator.IntervalSeconds == 0 {
		c.Simulator.IntervalSeconds = 20
	}
	if c.Clinic == nil {
		d := settings.Defaults()
		c.Clinic = &d
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	known := false
	for _, name := range KnownThemes() {
		if c.Theme == name {
			known = true
			break
		}
	}
	if !known {
		return errors.ConfigInvalid(fmt.Sprintf("unknown theme %q (available: %s)", c.Theme, strings.Join(KnownThemes(), ", ")))
	}
	if c.Simulator.IntervalSeconds < 1 {
		return errors.ConfigInvalid(fmt.Sprintf("simulator interval must be at least 1 second, got %d", c.Simulator.IntervalSeconds))
	}
	if c.Clinic != nil {
		if err := c.Clinic.Validate(); err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("clinic settings: %v", err))
		}
	}
	return nil
}

// FilePath returns where the config was read from
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetTheme returns the theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// SimulatorEnabled reports whether scripted inbound traffic runs
func (c *Config) SimulatorEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Simulator.Enabled
}

// SetSimulatorEnabled turns the simulator on or off
func (c *Config) SetSimulatorEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Simulator.Enabled = enabled
}

// SimulatorInterval returns the delay between scripted inbound messages
func (c *Config) SimulatorInterval() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.Simulator.IntervalSeconds) * time.Second
}

// InitialSettings returns the clinic settings the session starts with
func (c *Config) InitialSettings() settings.Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Clinic == nil {
		return settings.Defaults()
	}
	return *c.Clinic
}
