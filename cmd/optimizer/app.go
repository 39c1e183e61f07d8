package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"MoneyMarketOptimizer/internal/collector"
	"MoneyMarketOptimizer/internal/config"
	"MoneyMarketOptimizer/internal/profile"
	"MoneyMarketOptimizer/internal/recorder"
	"MoneyMarketOptimizer/internal/tax"
)

func loadConfig(g *globalOptions) (*config.Config, error) {
	path := config.Path(g.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	log.Debug().Str("path", path).Msg("config loaded")
	return cfg, nil
}

func loadTables(cfg *config.Config) (*tax.Tables, error) {
	if cfg.Data.TaxBrackets == "" {
		return tax.DefaultTables(), nil
	}
	t, err := tax.LoadTables(cfg.Data.TaxBrackets)
	if err != nil {
		return nil, fmt.Errorf("load tax brackets: %w", err)
	}
	return t, nil
}

// newFetcher prefers an explicit file, then the configured file, then HTTP.
func newFetcher(cfg *config.Config, fundFile string) collector.Fetcher {
	if fundFile == "" {
		fundFile = cfg.Data.File
	}
	if fundFile != "" {
		return collector.NewFileFetcher(fundFile)
	}
	return collector.NewHTTPFetcher(cfg.Data.URL, cfg.Proxy)
}

// profileStore is a profile.Store that may hold a connection.
type profileStore interface {
	profile.Store
	Close() error
}

type fileProfileStore struct{ *profile.FileStore }

func (fileProfileStore) Close() error { return nil }

// newProfileStore returns the Redis store when an address is configured and
// the file store otherwise.
func newProfileStore(cfg *config.Config) profileStore {
	ttl := time.Duration(cfg.Profile.TTLDays) * 24 * time.Hour
	if cfg.Profile.Redis.Addr != "" {
		r := cfg.Profile.Redis
		log.Debug().Str("addr", r.Addr).Str("key", r.Key).Msg("using redis profile store")
		return profile.NewRedisStore(r.Addr, r.Password, r.DB, r.Key, ttl)
	}
	return fileProfileStore{profile.NewFileStore(cfg.Profile.CacheFile, ttl)}
}

func newRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
		return recorder.NewNoopRecorder()
	}
	return sr
}

// loadCachedSettings returns the cached settings, treating a broken cache as empty.
func loadCachedSettings(ctx context.Context, store profile.Store) profile.Settings {
	s, found, err := store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("load cached tax settings")
		return profile.Settings{}
	}
	if !found {
		return profile.Settings{}
	}
	log.Info().Str("state", s.State.Code()).Time("saved_at", s.SavedAt).Msg("using cached tax settings")
	return s
}
