package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DateLayout is the calendar date format used across configuration and commands.
const DateLayout = "2006-01-02"

// timeOfDayLayout is the format for the daily report fire time.
const timeOfDayLayout = "15:04"

// Config represents the application configuration
type Config struct {
	Telegram TelegramConfig `env:", prefix=TELEGRAM_"`
	Health   HealthConfig   `env:", prefix=HEALTH_"`
	Report   ReportConfig   `env:", prefix=REPORT_"`
	Profile  ProfileConfig  `env:", prefix=PROFILE_"`
	Logging  LoggingConfig  `env:", prefix=LOG_"`
}

// TelegramConfig holds Telegram transport configuration
type TelegramConfig struct {
	BotToken    string        `env:"BOT_TOKEN"`
	ChatID      string        `env:"CHAT_ID"`
	PollTimeout time.Duration `env:"POLL_TIMEOUT, default=30s"`
}

// HealthConfig holds the liveness probe server configuration
type HealthConfig struct {
	Host         string        `env:"HOST, default=0.0.0.0"`
	Port         int           `env:"PORT, default=8000"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT, default=10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT, default=10s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT, default=60s"`
}

// ReportConfig holds the daily report schedule configuration
type ReportConfig struct {
	Time     string `env:"TIME, default=07:30"`
	Timezone string `env:"TIMEZONE, default=UTC"`
}

// ProfileConfig holds day-profile computation configuration
type ProfileConfig struct {
	BirthDate       string `env:"BIRTH_DATE, default=1972-11-10"`
	SumerianEnabled bool   `env:"SUMERIAN_ENABLED, default=false"`
	EasternEnabled  bool   `env:"EASTERN_ENABLED, default=false"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `env:"LEVEL, default=info"`
	Format string `env:"FORMAT, default=text"`
	Output string `env:"OUTPUT, default=stdout"`
}

// Load loads configuration from environment variables using go-envconfig
func Load(ctx context.Context) (*Config, error) {
	return LoadWithLookuper(ctx, envconfig.OsLookuper())
}

// LoadWithLookuper loads configuration from the given lookuper. Tests use
// this with envconfig.MapLookuper to avoid touching the process environment.
func LoadWithLookuper(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration. A missing bot token is fatal: the
// process must not proceed to serve traffic without one.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required, set it in the environment or .env file")
	}

	if c.Health.Port <= 0 || c.Health.Port > 65535 {
		return fmt.Errorf("invalid health port: %d", c.Health.Port)
	}

	if _, err := time.Parse(DateLayout, c.Profile.BirthDate); err != nil {
		return fmt.Errorf("invalid PROFILE_BIRTH_DATE %q: expected YYYY-MM-DD", c.Profile.BirthDate)
	}

	if _, err := time.Parse(timeOfDayLayout, c.Report.Time); err != nil {
		return fmt.Errorf("invalid REPORT_TIME %q: expected HH:MM", c.Report.Time)
	}

	if _, err := time.LoadLocation(c.Report.Timezone); err != nil {
		return fmt.Errorf("invalid REPORT_TIMEZONE %q: %w", c.Report.Timezone, err)
	}

	return nil
}

// BirthDate returns the configured birth date. Only valid after Validate.
func (c *Config) BirthDate() time.Time {
	t, _ := time.Parse(DateLayout, c.Profile.BirthDate)
	return t
}

// ReportClock returns the daily report fire time as (hour, minute).
// Only valid after Validate.
func (c *Config) ReportClock() (hour, minute int) {
	t, _ := time.Parse(timeOfDayLayout, c.Report.Time)
	return t.Hour(), t.Minute()
}

// ReportLocation returns the timezone the daily report fires in.
// Only valid after Validate.
func (c *Config) ReportLocation() *time.Location {
	loc, _ := time.LoadLocation(c.Report.Timezone)
	return loc
}

// HealthAddr returns the health server listen address
func (c *Config) HealthAddr() string {
	return fmt.Sprintf("%s:%d", c.Health.Host, c.Health.Port)
}
