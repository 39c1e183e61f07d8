package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"MoneyMarketOptimizer/internal/collector"
	"MoneyMarketOptimizer/internal/profile"
)

// DefaultPath is used when neither --config nor CONFIG_PATH is given.
const DefaultPath = "configs/config.yaml"

// Config holds all application configuration.
type Config struct {
	Data struct {
		URL         string `yaml:"url"`
		File        string `yaml:"file"`
		TaxBrackets string `yaml:"tax_brackets"`
	} `yaml:"data"`
	Profile struct {
		CacheFile string `yaml:"cache_file"`
		TTLDays   int    `yaml:"ttl_days"`
		Redis     struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Key      string `yaml:"key"`
		} `yaml:"redis"`
	} `yaml:"profile"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
	Proxy string `yaml:"proxy"`
}

// Path returns the config path, preferring the CONFIG_PATH environment variable
// when flagPath is empty.
func Path(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("FUND_DATA_URL"); v != "" {
		cfg.Data.URL = v
	}
	if v := os.Getenv("FUND_DATA_FILE"); v != "" {
		cfg.Data.File = v
	}
	if v := os.Getenv("TAX_BRACKETS_FILE"); v != "" {
		cfg.Data.TaxBrackets = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("PROFILE_CACHE_FILE"); v != "" {
		cfg.Profile.CacheFile = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Profile.Redis.Addr = v
	}
	if v := os.Getenv("PROFILE_TTL_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.Profile.TTLDays = days
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}

	// Defaults
	if cfg.Data.URL == "" {
		cfg.Data.URL = collector.DefaultFundDataURL
	}
	if cfg.Profile.CacheFile == "" {
		cfg.Profile.CacheFile = "data/tax_settings.json"
	}
	if cfg.Profile.TTLDays == 0 {
		cfg.Profile.TTLDays = int(profile.DefaultTTL.Hours() / 24)
	}
	if cfg.Profile.Redis.Key == "" {
		cfg.Profile.Redis.Key = profile.DefaultRedisKey
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/money_market.db"
	}
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = "0 0 * * * *"
	}

	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if c.Data.URL == "" && c.Data.File == "" {
		return fmt.Errorf("data.url or data.file is required")
	}
	if c.Profile.TTLDays < 0 {
		return fmt.Errorf("profile.ttl_days must not be negative")
	}
	if _, err := cron.NewParser(cronFields).Parse(c.Schedule.Cron); err != nil {
		return fmt.Errorf("schedule.cron: %w", err)
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}

// TelegramEnabled reports whether watch mode should send notifications.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// cronFields matches cron.WithSeconds, which the scheduler uses.
const cronFields = cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor
