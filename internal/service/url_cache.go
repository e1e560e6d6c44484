package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"shrinkr/internal/cache"
	"shrinkr/internal/entities"
	"shrinkr/internal/metrics"
)

// urlCache wraps the optional Redis cache. Every method is a no-op when no
// cache is configured, and cache failures are logged, never returned.
type urlCache struct {
	cache   cache.Cache
	ttl     time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func (c *urlCache) get(ctx context.Context, shortCode string) (*entities.URL, bool) {
	if c.cache == nil {
		return nil, false
	}

	var url entities.URL
	err := c.cache.GetJSON(ctx, cache.URLKey(shortCode), &url)
	switch {
	case err == nil:
		c.metrics.CacheHitsTotal.WithLabelValues("get_url").Inc()
		return &url, true
	case errors.Is(err, cache.ErrCacheMiss):
		c.metrics.CacheMissesTotal.WithLabelValues("get_url").Inc()
	default:
		c.metrics.CacheErrors.WithLabelValues("get_url").Inc()
		c.logger.Warn("cache read failed", zap.String("short_code", shortCode), zap.Error(err))
	}
	return nil, false
}

// store caches url until the earlier of the cache TTL and the URL's expiry
func (c *urlCache) store(ctx context.Context, url *entities.URL, now time.Time) {
	if c.cache == nil || url.ExpiresAt == nil {
		return
	}

	ttl := url.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return
	}
	if c.ttl < ttl {
		ttl = c.ttl
	}

	if err := c.cache.SetJSON(ctx, cache.URLKey(url.ShortCode), url, ttl); err != nil {
		c.metrics.CacheErrors.WithLabelValues("set_url").Inc()
		c.logger.Warn("cache write failed", zap.String("short_code", url.ShortCode), zap.Error(err))
	}
}

func (c *urlCache) evict(ctx context.Context, shortCodes ...string) {
	if c.cache == nil || len(shortCodes) == 0 {
		return
	}

	keys := make([]string, len(shortCodes))
	for i, code := range shortCodes {
		keys[i] = cache.URLKey(code)
	}
	if err := c.cache.Delete(ctx, keys...); err != nil {
		c.metrics.CacheErrors.WithLabelValues("delete_url").Inc()
		c.logger.Warn("cache eviction failed", zap.Int("keys", len(keys)), zap.Error(err))
	}
}
