package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/deliverybot/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
logger:
  level: debug
  json: true
telegram:
  token: "123:abc"
  admin_user_id: 42
database:
  path: /tmp/bot.db
  retention_days: 7
responder:
  timezone: Europe/Lisbon
scheduler:
  tasks:
    sql_maintenance:
      enabled: false
messages:
  welcome: "hello there"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Logger.JSON)
	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, int64(42), cfg.Telegram.AdminUserID)
	assert.Equal(t, "/tmp/bot.db", cfg.Database.Path)
	assert.Equal(t, 7, cfg.Database.RetentionDays)
	assert.Equal(t, config.DefaultHistoryLimit, cfg.Database.HistoryLimit)
	assert.Equal(t, "Europe/Lisbon", cfg.Location().String())
	assert.Equal(t, "hello there", cfg.Messages.Welcome)
	assert.Equal(t, config.DefaultMessages.Help, cfg.Messages.Help)
	assert.False(t, cfg.Scheduler.Tasks[config.TaskSQLMaintenance].Enabled)
}

func TestLoadConfigMissingFileUsesDefaultsAndEnv(t *testing.T) {
	t.Setenv("BOT_TELEGRAM_TOKEN", "env-token")
	t.Setenv("BOT_TELEGRAM_ADMIN_USER_ID", "7")
	t.Setenv("BOT_LOGGER_LEVEL", "warn")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Telegram.Token)
	assert.Equal(t, int64(7), cfg.Telegram.AdminUserID)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, config.DefaultDBPath, cfg.Database.Path)
	assert.Equal(t, config.DefaultRetentionDays, cfg.Database.RetentionDays)
	assert.Equal(t, "UTC", cfg.Location().String())

	maintenance := cfg.Scheduler.Tasks[config.TaskSQLMaintenance]
	assert.True(t, maintenance.Enabled)
	assert.Equal(t, config.DefaultMaintenanceSchedule, maintenance.Schedule)
	assert.Equal(t, config.DefaultRetentionSchedule, cfg.Scheduler.Tasks[config.TaskExchangeRetention].Schedule)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing token",
			body: "telegram:\n  admin_user_id: 1\n",
		},
		{
			name: "missing admin",
			body: "telegram:\n  token: t\n",
		},
		{
			name: "bad log level",
			body: "telegram:\n  token: t\n  admin_user_id: 1\nlogger:\n  level: verbose\n",
		},
		{
			name: "bad timezone",
			body: "telegram:\n  token: t\n  admin_user_id: 1\nresponder:\n  timezone: Mars/Olympus\n",
		},
		{
			name: "negative retention",
			body: "telegram:\n  token: t\n  admin_user_id: 1\ndatabase:\n  retention_days: -1\n",
		},
		{
			name: "history limit too large",
			body: "telegram:\n  token: t\n  admin_user_id: 1\ndatabase:\n  history_limit: 500\n",
		},
		{
			name: "enabled task without schedule",
			body: "telegram:\n  token: t\n  admin_user_id: 1\nscheduler:\n  tasks:\n    nightly:\n      enabled: true\n",
		},
		{
			name: "malformed yaml",
			body: "telegram: [\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tc.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrConfiguration), "error %v should wrap ErrConfiguration", err)
		})
	}
}
