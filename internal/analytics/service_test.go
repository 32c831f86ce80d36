package analytics

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"dharma/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	temple      *TempleAnalytics
	global      *GlobalAnalytics
	templeCalls int
	globalCalls int
}

func (f *fakeRepository) GetTempleAnalytics(_ context.Context, templeID uint, _ int) (*TempleAnalytics, error) {
	f.templeCalls++
	if f.temple == nil || f.temple.TempleID != templeID {
		return nil, ErrTempleNotFound
	}
	out := *f.temple
	return &out, nil
}

func (f *fakeRepository) GetGlobalAnalytics(_ context.Context, _ int) (*GlobalAnalytics, error) {
	f.globalCalls++
	out := *f.global
	return &out, nil
}

// fakeCache is an in-memory cache.Service for exercising the
// read-through path without Redis.
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) error {
	data, ok := f.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) DeletePattern(context.Context, string) error { return nil }

func (f *fakeCache) Exists(_ context.Context, key string) bool {
	_, ok := f.entries[key]
	return ok
}

func (f *fakeCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	if err := f.Get(ctx, key, dest); err == nil {
		return nil
	}
	data, err := fetcher()
	if err != nil {
		return err
	}
	if err := f.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	return f.Get(ctx, key, dest)
}

func (f *fakeCache) Ping(context.Context) error { return nil }

func fixture() (*fakeRepository, *fakeCache, Service) {
	repo := &fakeRepository{
		temple: &TempleAnalytics{
			TempleID:      1,
			TempleName:    "Shri Siddhivinayak",
			TotalBookings: 42,
			TotalRevenue:  21000,
		},
		global: &GlobalAnalytics{
			TotalTemples:  3,
			TotalBookings: 99,
			TotalRevenue:  49500,
		},
	}
	c := newFakeCache()
	return repo, c, &service{repo: repo, cache: c}
}

func TestGetTempleAnalytics_ServedFromCacheOnRepeat(t *testing.T) {
	repo, _, svc := fixture()

	first, err := svc.GetTempleAnalytics(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 42, first.TotalBookings)

	second, err := svc.GetTempleAnalytics(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.templeCalls, "second read must come from the cache")
}

func TestGetTempleAnalytics_UnknownTemple(t *testing.T) {
	_, _, svc := fixture()

	_, err := svc.GetTempleAnalytics(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTempleNotFound)
}

func TestGetGlobalAnalytics_ServedFromCacheOnRepeat(t *testing.T) {
	repo, _, svc := fixture()

	first, err := svc.GetGlobalAnalytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, first.TotalTemples)

	_, err = svc.GetGlobalAnalytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.globalCalls)
}

func TestGetTempleAnalytics_NoCacheConfigured(t *testing.T) {
	repo, _, _ := fixture()
	svc := &service{repo: repo}

	first, err := svc.GetTempleAnalytics(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 42, first.TotalBookings)

	_, err = svc.GetTempleAnalytics(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.templeCalls, "every read hits the repository without a cache")
}
