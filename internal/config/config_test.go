package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MoneyMarketOptimizer/internal/collector"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"FUND_DATA_URL", "FUND_DATA_FILE", "TAX_BRACKETS_FILE", "PROFILE_CACHE_FILE",
		"PROFILE_TTL_DAYS", "REDIS_ADDR", "SQLITE_PATH", "WATCH_CRON", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "METRICS_ADDR"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, collector.DefaultFundDataURL, cfg.Data.URL)
	assert.Equal(t, "data/tax_settings.json", cfg.Profile.CacheFile)
	assert.Equal(t, 30, cfg.Profile.TTLDays)
	assert.Equal(t, "mmf:tax_settings", cfg.Profile.Redis.Key)
	assert.Equal(t, "data/money_market.db", cfg.Database.SQLitePath)
	assert.Equal(t, "0 0 * * * *", cfg.Schedule.Cron)
	assert.False(t, cfg.TelegramEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data:
  file: funds.json
profile:
  ttl_days: 7
  redis:
    addr: localhost:6379
schedule:
  cron: "0 30 8 * * 1-5"
telegram:
  bot_token: token
  chat_id: "42"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	clearEnv(t)
	t.Setenv("SQLITE_PATH", "/tmp/override.db")
	t.Setenv("METRICS_ADDR", ":9102")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "funds.json", cfg.Data.File)
	assert.Equal(t, 7, cfg.Profile.TTLDays)
	assert.Equal(t, "localhost:6379", cfg.Profile.Redis.Addr)
	assert.Equal(t, "0 30 8 * * 1-5", cfg.Schedule.Cron)
	assert.Equal(t, "/tmp/override.db", cfg.Database.SQLitePath)
	assert.Equal(t, ":9102", cfg.Metrics.Addr)
	assert.True(t, cfg.TelegramEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: [unclosed"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad cron", func(c *Config) { c.Schedule.Cron = "every hour" }},
		{"negative ttl", func(c *Config) { c.Profile.TTLDays = -1 }},
		{"half telegram", func(c *Config) { c.Telegram.BotToken = "token" }},
		{"no data source", func(c *Config) { c.Data.URL = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, DefaultPath, Path(""))
	assert.Equal(t, "x.yaml", Path("x.yaml"))
	t.Setenv("CONFIG_PATH", "env.yaml")
	assert.Equal(t, "env.yaml", Path(""))
}
