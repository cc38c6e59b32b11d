package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/calendrio/calendar-backend/internal/domain"
)

// Config is the full service configuration, loaded once at startup.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN renders the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BookingConfig defines the working hours, the generated slot length, and
// the default timezone used for the booking-side working-hours check.
type BookingConfig struct {
	StartHour           int    `toml:"start_hour"`
	EndHour             int    `toml:"end_hour"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	Timezone            string `toml:"timezone"`
}

// Schedule resolves the booking configuration into the domain schedule.
func (b BookingConfig) Schedule() (domain.Schedule, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("config: unknown timezone %q: %w", b.Timezone, err)
	}
	return domain.Schedule{
		StartHour:       b.StartHour,
		EndHour:         b.EndHour,
		DurationMinutes: b.SlotDurationMinutes,
		DefaultZone:     loc,
	}, nil
}

// Load reads the TOML configuration file, applies environment overrides
// (PORT, START_HOUR, END_HOUR, DURATION, TIMEZONE), and validates the
// result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	overrides := []struct {
		name   string
		target *int
	}{
		{"PORT", &cfg.Server.HTTPPort},
		{"START_HOUR", &cfg.Booking.StartHour},
		{"END_HOUR", &cfg.Booking.EndHour},
		{"DURATION", &cfg.Booking.SlotDurationMinutes},
	}

	for _, o := range overrides {
		raw, ok := os.LookupEnv(o.name)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config: %s must be an integer, got %q", o.name, raw)
		}
		*o.target = v
	}

	if tz, ok := os.LookupEnv("TIMEZONE"); ok {
		cfg.Booking.Timezone = tz
	}

	return nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: http_port must be in 1..65535, got %d", c.Server.HTTPPort)
	}

	b := c.Booking
	if b.StartHour < 0 || b.StartHour > 23 {
		return fmt.Errorf("config: start_hour must be in 0..23, got %d", b.StartHour)
	}
	if b.EndHour < 1 || b.EndHour > 24 {
		return fmt.Errorf("config: end_hour must be in 1..24, got %d", b.EndHour)
	}
	if b.StartHour >= b.EndHour {
		return fmt.Errorf("config: start_hour (%d) must be before end_hour (%d)", b.StartHour, b.EndHour)
	}
	if !domain.ValidDuration(b.SlotDurationMinutes) {
		return fmt.Errorf("config: slot_duration_minutes must be a multiple of %d in %d..%d, got %d",
			domain.DurationStepMinutes, domain.MinDurationMinutes, domain.MaxDurationMinutes, b.SlotDurationMinutes)
	}
	if _, err := time.LoadLocation(b.Timezone); err != nil {
		return fmt.Errorf("config: unknown timezone %q: %w", b.Timezone, err)
	}

	return nil
}
