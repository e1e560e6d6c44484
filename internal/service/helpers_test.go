package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shrinkr/internal/cache"
	"shrinkr/internal/metrics"
	"shrinkr/internal/repository"
)

var baseTime = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// mapCache is an in-process cache.Cache for exercising cache paths
type mapCache struct {
	mu      sync.Mutex
	entries map[string]string
	deletes int
}

var _ cache.Cache = (*mapCache)(nil)

func newMapCache() *mapCache { return &mapCache{entries: make(map[string]string)} }

func (m *mapCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (m *mapCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *mapCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries, k)
	}
	m.deletes++
	return nil
}

func (m *mapCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return m.Set(ctx, key, string(data), ttl)
}

func (m *mapCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := m.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func (m *mapCache) Close() error { return nil }

func (m *mapCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok
}

func newTestMetrics() *metrics.Metrics {
	return metrics.NewMetrics(prometheus.NewRegistry())
}

type testEnv struct {
	repo  repository.URLRepository
	clock *fakeClock
	cache *mapCache
	svc   URLService
}

// newTestEnv wires a URLService over memory storage and a fake clock.
// Pass withCache to put a mapCache in front of lookups.
func newTestEnv(t *testing.T, withCache bool) *testEnv {
	t.Helper()

	env := &testEnv{
		repo:  repository.NewMemoryURLRepository(),
		clock: newFakeClock(baseTime),
	}

	var c cache.Cache
	if withCache {
		env.cache = newMapCache()
		c = env.cache
	}

	env.svc = NewURLService(env.repo, c, zap.NewNop(), newTestMetrics(), URLServiceConfig{
		BaseURL:  "https://sho.rt/",
		CacheTTL: time.Hour,
		Clock:    env.clock,
	})
	require.NotNil(t, env.svc)
	return env
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
