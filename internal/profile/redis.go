package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultRedisKey is where settings are stored when no key is configured.
const DefaultRedisKey = "mmf:tax_settings"

// RedisStore keeps settings under one key and lets Redis expire it.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisStore connects to addr; ttl <= 0 means DefaultTTL.
func NewRedisStore(addr, password string, db int, key string, ttl time.Duration) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return newRedisStore(rdb, key, ttl)
}

func newRedisStore(client *redis.Client, key string, ttl time.Duration) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, key: key, ttl: ttl, now: time.Now}
}

func (r *RedisStore) Load(ctx context.Context) (Settings, bool, error) {
	val, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Settings{}, false, nil
		}
		return Settings{}, false, fmt.Errorf("redis get settings: %w", err)
	}
	var s Settings
	if err := json.Unmarshal(val, &s); err != nil {
		return Settings{}, false, fmt.Errorf("decode settings: %w", err)
	}
	return s, true, nil
}

func (r *RedisStore) Save(ctx context.Context, s Settings) error {
	s.SavedAt = r.now()
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set settings: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis delete settings: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
