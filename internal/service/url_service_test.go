package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shrinkr/internal/models"
)

func newCreateRequest(longURL string) *models.CreateURLRequest {
	return &models.CreateURLRequest{LongURL: longURL}
}

func TestCreateCustomSlugOneDay(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	resp, err := env.svc.CreateShortURL(ctx, &models.CreateURLRequest{
		LongURL:          "https://example.com/launch",
		CustomSlug:       strPtr("my-link"),
		ExpirationOption: "1d",
	}, Owned(testOwner))
	require.NoError(t, err)

	assert.Equal(t, "my-link", resp.ShortCode)
	assert.Equal(t, "https://sho.rt/my-link", resp.ShortURL)
	assert.Equal(t, "1d", resp.ExpirationOption)
	assert.Equal(t, string(StatusActive), resp.Status)
	require.NotNil(t, resp.ExpiresAt)
	assert.Equal(t, resp.CreatedAt.Add(24*time.Hour), *resp.ExpiresAt)

	env.clock.Advance(time.Hour)
	list, err := env.svc.GetUserURLs(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, list.URLs, 1)
	assert.Equal(t, string(StatusExpiringSoon), list.URLs[0].Status)
	assert.Equal(t, 1, list.Stats.ExpiringURLs)

	env.clock.Advance(24 * time.Hour)
	list, err = env.svc.GetUserURLs(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, string(StatusExpired), list.URLs[0].Status)
	assert.Equal(t, 1, list.Stats.ExpiredURLs)
}

func TestCreateDefaultsToFourteenDays(t *testing.T) {
	env := newTestEnv(t, false)

	resp, err := env.svc.CreateShortURL(context.Background(), newCreateRequest("https://example.com"), Owned(testOwner))
	require.NoError(t, err)
	assert.Equal(t, "14d", resp.ExpirationOption)
	assert.Equal(t, baseTime.Add(14*24*time.Hour), *resp.ExpiresAt)
	assert.Len(t, resp.ShortCode, DefaultCodeLength)
}

func TestCreateRejectsReservedSlug(t *testing.T) {
	env := newTestEnv(t, false)

	req := newCreateRequest("https://example.com")
	req.CustomSlug = strPtr("admin")
	_, err := env.svc.CreateShortURL(context.Background(), req, Owned(testOwner))
	assert.True(t, errors.Is(err, ErrReservedSlug))
}

func TestCreateRejectsInvalidLongURL(t *testing.T) {
	env := newTestEnv(t, false)

	for _, raw := range []string{
		"",
		"   ",
		"not a url",
		"/relative/path",
		"example.com",
		"ftp://files.example.com",
		"javascript:alert(1)",
		"https://example.com/" + strings.Repeat("a", maxLongURLLength),
	} {
		_, err := env.svc.CreateShortURL(context.Background(), newCreateRequest(raw), Owned(testOwner))
		assert.True(t, errors.Is(err, ErrValidation), "input %q", raw)
	}
}

func TestCreateRejectsUnknownExpirationOption(t *testing.T) {
	env := newTestEnv(t, false)

	req := newCreateRequest("https://example.com")
	req.ExpirationOption = "30d"
	_, err := env.svc.CreateShortURL(context.Background(), req, Owned(testOwner))
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestAnonymousQuotaLifecycle(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	const addr = "203.0.113.9"

	for i := 0; i < AnonymousQuotaLimit; i++ {
		_, err := env.svc.CreateShortURL(ctx, newCreateRequest("https://example.com"), Anonymous(addr))
		require.NoError(t, err)
	}

	_, err := env.svc.CreateShortURL(ctx, newCreateRequest("https://example.com"), Anonymous("::ffff:"+addr))
	var quotaErr *QuotaExceededError
	require.True(t, errors.As(err, &quotaErr))
	assert.Equal(t, 3, quotaErr.Current)
	assert.Equal(t, 3, quotaErr.Limit)

	usage, err := env.svc.GetQuotaUsage(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, &models.QuotaUsageResponse{Current: 3, Limit: 3, Remaining: 0}, usage)

	// owned creation never counts against or is blocked by the quota
	_, err = env.svc.CreateShortURL(ctx, newCreateRequest("https://example.com"), Owned(testOwner))
	require.NoError(t, err)

	reset, err := env.svc.ResetAnonymousQuota(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, reset.DeletedCount)

	_, err = env.svc.CreateShortURL(ctx, newCreateRequest("https://example.com"), Anonymous(addr))
	require.NoError(t, err)

	usage, err = env.svc.GetQuotaUsage(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, &models.QuotaUsageResponse{Current: 1, Limit: 3, Remaining: 2}, usage)

	list, err := env.svc.GetUserURLs(ctx, testOwner)
	require.NoError(t, err)
	assert.Len(t, list.URLs, 1)
}

func TestQuotaCountsExpiredAnonymousURLs(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	for i := 0; i < AnonymousQuotaLimit; i++ {
		req := newCreateRequest("https://example.com")
		req.ExpirationOption = "5h"
		_, err := env.svc.CreateShortURL(ctx, req, Anonymous("198.51.100.4"))
		require.NoError(t, err)
	}

	env.clock.Advance(6 * time.Hour)
	_, err := env.svc.CreateShortURL(ctx, newCreateRequest("https://example.com"), Anonymous("198.51.100.4"))
	assert.True(t, errors.Is(err, ErrQuotaExceeded))
}

func TestListAndStatsRequireUser(t *testing.T) {
	env := newTestEnv(t, false)

	_, err := env.svc.GetUserURLs(context.Background(), "")
	assert.True(t, errors.Is(err, ErrUnauthenticated))

	_, err = env.svc.GetUserStats(context.Background(), "")
	assert.True(t, errors.Is(err, ErrUnauthenticated))
}

func TestGetUserStats(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	clicked := createOwned(t, env, "clicked", "7d")
	createOwned(t, env, "idle", "5h")
	for i := 0; i < 3; i++ {
		_, err := env.svc.Resolve(ctx, clicked.ShortCode)
		require.NoError(t, err)
	}

	stats, err := env.svc.GetUserStats(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalURLs)
	assert.Equal(t, int64(3), stats.TotalClicks)
	assert.Equal(t, 1, stats.ActiveURLs)
	assert.Equal(t, 1, stats.ExpiringURLs)
	assert.Equal(t, 1, stats.ClickedURLs)
	assert.Equal(t, int64(50), stats.ClickRate)
	assert.Equal(t, int64(2), stats.AvgClicksPerURL)
}

func TestPurgeExpired(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	createOwned(t, env, "old-one", "5h")
	keep := createOwned(t, env, "keeper", "14d")

	env.clock.Advance(5*time.Hour + 8*24*time.Hour)
	purged, err := env.svc.PurgeExpired(ctx, 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	list, err := env.svc.GetUserURLs(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, list.URLs, 1)
	assert.Equal(t, keep.ShortCode, list.URLs[0].ShortCode)

	exists, err := env.svc.ShortCodeExists(ctx, "old-one")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestShortCodeExists(t *testing.T) {
	env := newTestEnv(t, false)
	createOwned(t, env, "present", "7d")

	exists, err := env.svc.ShortCodeExists(context.Background(), "present")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = env.svc.ShortCodeExists(context.Background(), "x")
	require.NoError(t, err)
	assert.False(t, exists)
}
