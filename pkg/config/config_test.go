package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithLookuper(context.Background(), envconfig.MapLookuper(map[string]string{
		"TELEGRAM_BOT_TOKEN": "123:abc",
	}))
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, "", cfg.Telegram.ChatID)
	assert.Equal(t, 30*time.Second, cfg.Telegram.PollTimeout)

	assert.Equal(t, "0.0.0.0", cfg.Health.Host)
	assert.Equal(t, 8000, cfg.Health.Port)
	assert.Equal(t, "0.0.0.0:8000", cfg.HealthAddr())

	assert.Equal(t, "07:30", cfg.Report.Time)
	assert.Equal(t, "UTC", cfg.Report.Timezone)

	assert.Equal(t, "1972-11-10", cfg.Profile.BirthDate)
	assert.False(t, cfg.Profile.SumerianEnabled)
	assert.False(t, cfg.Profile.EasternEnabled)

	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingToken(t *testing.T) {
	_, err := LoadWithLookuper(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadWithLookuper(context.Background(), envconfig.MapLookuper(map[string]string{
		"TELEGRAM_BOT_TOKEN":       "123:abc",
		"TELEGRAM_CHAT_ID":         "635079110",
		"HEALTH_PORT":              "9090",
		"REPORT_TIME":              "06:15",
		"REPORT_TIMEZONE":          "UTC",
		"PROFILE_BIRTH_DATE":       "1990-05-20",
		"PROFILE_SUMERIAN_ENABLED": "true",
		"LOG_LEVEL":                "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "635079110", cfg.Telegram.ChatID)
	assert.Equal(t, 9090, cfg.Health.Port)
	assert.True(t, cfg.Profile.SumerianEnabled)
	assert.Equal(t, "debug", cfg.Logging.Level)

	assert.Equal(t, time.Date(1990, time.May, 20, 0, 0, 0, 0, time.UTC), cfg.BirthDate())

	hour, minute := cfg.ReportClock()
	assert.Equal(t, 6, hour)
	assert.Equal(t, 15, minute)

	assert.Equal(t, time.UTC, cfg.ReportLocation())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	base := map[string]string{"TELEGRAM_BOT_TOKEN": "123:abc"}

	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad birth date", "PROFILE_BIRTH_DATE", "1990-13-40"},
		{"bad report time", "REPORT_TIME", "25:99"},
		{"bad timezone", "REPORT_TIMEZONE", "Mars/Olympus"},
		{"bad port", "HEALTH_PORT", "70000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := map[string]string{}
			for k, v := range base {
				env[k] = v
			}
			env[tc.key] = tc.value

			_, err := LoadWithLookuper(context.Background(), envconfig.MapLookuper(env))
			assert.Error(t, err)
		})
	}
}
