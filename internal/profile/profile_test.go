package profile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MoneyMarketOptimizer/internal/model"
	"MoneyMarketOptimizer/internal/tax"
)

func ptr(v float64) *float64 { return &v }

func TestSettings_Source(t *testing.T) {
	src, err := Settings{FederalRate: ptr(0.24), StateRate: ptr(0.093), Income: ptr(1), State: model.CA}.Source()
	require.NoError(t, err)
	assert.Equal(t, tax.Override{FederalRate: 0.24, StateRate: 0.093, State: model.CA}, src)

	src, err = Settings{Income: ptr(90000), State: model.NY}.Source()
	require.NoError(t, err)
	assert.Equal(t, tax.Lookup{Income: 90000, Status: model.Single, State: model.NY}, src)

	src, err = Settings{Income: ptr(90000), FilingStatus: model.MarriedJoint, State: model.NY}.Source()
	require.NoError(t, err)
	assert.Equal(t, model.MarriedJoint, src.(tax.Lookup).Status)

	_, err = Settings{FederalRate: ptr(0.24), State: model.CA}.Source()
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestSettings_Expired(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	assert.True(t, Settings{}.Expired(now, DefaultTTL))
	assert.False(t, Settings{SavedAt: now.Add(-29 * 24 * time.Hour)}.Expired(now, DefaultTTL))
	assert.True(t, Settings{SavedAt: now.Add(-31 * 24 * time.Hour)}.Expired(now, DefaultTTL))
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	store := NewFileStore(path, 0)
	assert.Equal(t, DefaultTTL, store.TTL)

	_, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	in := Settings{Income: ptr(120000), FilingStatus: model.MarriedJoint, State: model.NJ}
	require.NoError(t, store.Save(ctx, in))

	out, found, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, model.NJ, out.State)
	assert.Equal(t, 120000.0, *out.Income)
	assert.Equal(t, model.MarriedJoint, out.FilingStatus)
	assert.Nil(t, out.FederalRate)
	assert.False(t, out.SavedAt.IsZero())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Clear(ctx))
	_, found, err = store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, store.Clear(ctx))
}

func TestFileStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.json"), DefaultTTL)
	saved := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.Now = func() time.Time { return saved }
	require.NoError(t, store.Save(ctx, Settings{FederalRate: ptr(0.22), StateRate: ptr(0), State: model.TX}))

	store.Now = func() time.Time { return saved.Add(10 * 24 * time.Hour) }
	_, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)

	store.Now = func() time.Time { return saved.Add(31 * 24 * time.Hour) }
	_, found, err = store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, _, err := NewFileStore(path, 0).Load(context.Background())
	assert.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	store := newRedisStore(db, "", 0)
	saved := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return saved }

	in := Settings{FederalRate: ptr(0.32), StateRate: ptr(0.0685), State: model.NY}
	expected := in
	expected.SavedAt = saved
	data, err := json.Marshal(expected)
	require.NoError(t, err)

	t.Run("save sets key with ttl", func(t *testing.T) {
		mock.ExpectSet(DefaultRedisKey, data, DefaultTTL).SetVal("OK")
		require.NoError(t, store.Save(ctx, in))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("load hit", func(t *testing.T) {
		mock.ExpectGet(DefaultRedisKey).SetVal(string(data))
		out, found, err := store.Load(ctx)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, model.NY, out.State)
		assert.Equal(t, 0.32, *out.FederalRate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("load miss", func(t *testing.T) {
		mock.ExpectGet(DefaultRedisKey).RedisNil()
		_, found, err := store.Load(ctx)
		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("load error", func(t *testing.T) {
		mock.ExpectGet(DefaultRedisKey).SetErr(redis.TxFailedErr)
		_, _, err := store.Load(ctx)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clear", func(t *testing.T) {
		mock.ExpectDel(DefaultRedisKey).SetVal(1)
		require.NoError(t, store.Clear(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
