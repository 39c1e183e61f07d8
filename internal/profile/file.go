package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileStore keeps settings in a JSON file and enforces the TTL on load.
type FileStore struct {
	Path string
	TTL  time.Duration
	Now  func() time.Time
}

// NewFileStore creates a FileStore; ttl <= 0 means DefaultTTL.
func NewFileStore(path string, ttl time.Duration) *FileStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &FileStore{Path: path, TTL: ttl, Now: time.Now}
}

func (f *FileStore) Load(_ context.Context) (Settings, bool, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, false, nil
		}
		return Settings{}, false, fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, false, fmt.Errorf("decode settings: %w", err)
	}
	if s.Expired(f.Now(), f.TTL) {
		return Settings{}, false, nil
	}
	return s, true, nil
}

func (f *FileStore) Save(_ context.Context, s Settings) error {
	s.SavedAt = f.Now()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	return os.WriteFile(f.Path, data, 0o600)
}

func (f *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove settings: %w", err)
	}
	return nil
}
