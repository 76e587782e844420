// Package config provides the demo application's YAML configuration: the
// full engine knob surface plus demo-only settings (timezone, refresh
// schedule, appointment sources). Loading a missing file writes the default
// config first, so the first run leaves an editable template behind.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"agendacal/calendar"
)

// AppointmentFixture is an inline appointment in the config file, useful
// for demos without an ICS source.
type AppointmentFixture struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	// Date is "YYYY-MM-DD" in the configured timezone.
	Date string `yaml:"date"`
	// Time is an optional "HH:MM".
	Time string `yaml:"time,omitempty"`
}

// Config is the top-level demo application configuration.
type Config struct {
	// Timezone is the IANA zone all dates are interpreted in.
	Timezone string `yaml:"timezone"`

	// RefreshCron re-renders the calendar on this schedule in watch mode,
	// so elapsed slots and the working-hours status stay current.
	RefreshCron string `yaml:"refresh"`

	// LogLevel is debug/info/warn/error.
	LogLevel string `yaml:"log_level"`

	// ICSFiles lists .ics files on disk to import appointments from.
	ICSFiles []string `yaml:"ics_files"`

	// Appointments are inline fixture appointments.
	Appointments []AppointmentFixture `yaml:"appointments"`

	// Calendar is the engine configuration, passed through verbatim.
	Calendar calendar.Config `yaml:"calendar"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timezone:     "America/Sao_Paulo",
		RefreshCron:  "*/30 * * * * *",
		LogLevel:     "info",
		ICSFiles:     []string{},
		Appointments: []AppointmentFixture{},
	}
}

// Normalize fills missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.Timezone == "" {
		c.Timezone = "America/Sao_Paulo"
	}
	if c.RefreshCron == "" {
		c.RefreshCron = "*/30 * * * * *"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ICSFiles == nil {
		c.ICSFiles = []string{}
	}
	if c.Appointments == nil {
		c.Appointments = []AppointmentFixture{}
	}
	c.Calendar.Normalize()
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// CalendarAppointments converts the inline fixtures into engine
// appointments. Entries with an unparseable date are skipped with a
// warning; the demo keeps rendering.
func (c *Config) CalendarAppointments(loc *time.Location) []calendar.Appointment {
	out := make([]calendar.Appointment, 0, len(c.Appointments))
	for i, fx := range c.Appointments {
		day, err := time.ParseInLocation("2006-01-02", fx.Date, loc)
		if err != nil {
			continue
		}
		id := fx.ID
		if id == "" {
			id = fmt.Sprintf("fixture-%d", i+1)
		}
		out = append(out, calendar.Appointment{
			ID:    id,
			Title: fx.Title,
			Date:  day,
			Time:  fx.Time,
		})
	}
	return out
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist, a default config is written there (creating
// the parent directory if needed) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration to path atomically (temp file + rename)
// with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".agendacal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// Save delegates to the package-level Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
