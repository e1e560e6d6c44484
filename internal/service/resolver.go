package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"shrinkr/internal/entities"
	"shrinkr/internal/metrics"
	"shrinkr/internal/repository"
)

// ResolveResult is where a short code sends the caller
type ResolveResult struct {
	TargetURL  string
	ClickCount int64
}

// RedirectResolver turns a short code into a target URL: lookup, expiry
// check, click increment, then target normalization. An expired URL is
// reported as ErrGone and its clicks are left alone.
type RedirectResolver struct {
	repo    repository.URLRepository
	tracker *ClickTracker
	policy  ExpirationPolicy
	clock   Clock
	cache   *urlCache
	metrics *metrics.Metrics

	// lookups collapses concurrent cache misses for the same code.
	// Click increments always run per request.
	lookups singleflight.Group
}

func newRedirectResolver(repo repository.URLRepository, tracker *ClickTracker, clock Clock, c *urlCache, m *metrics.Metrics) *RedirectResolver {
	return &RedirectResolver{
		repo:    repo,
		tracker: tracker,
		clock:   clock,
		cache:   c,
		metrics: m,
	}
}

func (r *RedirectResolver) Resolve(ctx context.Context, shortCode string) (*ResolveResult, error) {
	result, err := r.resolve(ctx, shortCode)
	switch {
	case err == nil:
		r.metrics.RedirectsTotal.WithLabelValues("resolved").Inc()
	case errors.Is(err, ErrNotFound):
		r.metrics.RedirectsTotal.WithLabelValues("not_found").Inc()
	case errors.Is(err, ErrGone):
		r.metrics.RedirectsTotal.WithLabelValues("gone").Inc()
	}
	return result, err
}

func (r *RedirectResolver) resolve(ctx context.Context, shortCode string) (*ResolveResult, error) {
	if !IsWellFormedCode(shortCode) {
		return nil, ErrNotFound
	}

	url, err := r.lookup(ctx, shortCode)
	if err != nil {
		return nil, err
	}
	if !url.IsActive {
		return nil, ErrNotFound
	}
	if r.policy.IsExpired(url, r.clock.Now()) {
		r.cache.evict(ctx, shortCode)
		return nil, ErrGone
	}

	updated, err := r.tracker.Increment(ctx, shortCode)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// deleted between lookup and increment
			r.cache.evict(ctx, shortCode)
		}
		return nil, err
	}

	// the looked-up copy may predate a renewal or deactivation; the
	// incremented row is current
	if staleCopy(url, updated) {
		r.cache.evict(ctx, shortCode)
		if !updated.IsActive {
			return nil, ErrNotFound
		}
		if r.policy.IsExpired(updated, r.clock.Now()) {
			return nil, ErrGone
		}
	}

	return &ResolveResult{
		TargetURL:  NormalizeTarget(updated.LongURL),
		ClickCount: updated.ClickCount,
	}, nil
}

func (r *RedirectResolver) lookup(ctx context.Context, shortCode string) (*entities.URL, error) {
	if url, ok := r.cache.get(ctx, shortCode); ok {
		return url, nil
	}

	v, err, _ := r.lookups.Do(shortCode, func() (interface{}, error) {
		url, err := r.repo.FindByShortCode(ctx, shortCode)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		r.cache.store(ctx, url, r.clock.Now())
		return url, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entities.URL), nil
}

func staleCopy(seen, current *entities.URL) bool {
	if seen.IsActive != current.IsActive {
		return true
	}
	if seen.ExpiresAt == nil || current.ExpiresAt == nil {
		return seen.ExpiresAt != current.ExpiresAt
	}
	return !seen.ExpiresAt.Equal(*current.ExpiresAt)
}

// NormalizeTarget prefixes https:// when the URL has no http or https scheme
func NormalizeTarget(longURL string) string {
	lower := strings.ToLower(longURL)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return longURL
	}
	return "https://" + longURL
}
