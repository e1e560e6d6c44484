package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shrinkr/internal/entities"
	"shrinkr/internal/repository"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"::ffff:192.168.1.5", "192.168.1.5"},
		{"::FFFF:10.0.0.1", "10.0.0.1"},
		{"10.0.0.1", "10.0.0.1"},
		{" 203.0.113.9 ", "203.0.113.9"},
		{"::1", "::1"},
		{"2001:db8::1", "2001:db8::1"},
		{"::ffff:abcd", "::ffff:abcd"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeAddress(tt.in), "input %q", tt.in)
	}
}

func seedAnonymous(t *testing.T, repo repository.URLRepository, code, address string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &entities.URL{
		LongURL:        "https://example.com/" + code,
		ShortCode:      code,
		CreatorAddress: strPtr(address),
		CreatedAt:      baseTime,
		IsActive:       true,
	}))
}

func TestQuotaGuardRejectsAtLimit(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryURLRepository()
	guard := NewQuotaGuard(repo)

	for _, code := range []string{"anon1", "anon2"} {
		seedAnonymous(t, repo, code, "10.1.1.1")
	}
	require.NoError(t, guard.CheckAndAdmit(ctx, "10.1.1.1"))

	seedAnonymous(t, repo, "anon3", "10.1.1.1")
	err := guard.CheckAndAdmit(ctx, "::ffff:10.1.1.1")

	var quotaErr *QuotaExceededError
	require.True(t, errors.As(err, &quotaErr))
	assert.Equal(t, 3, quotaErr.Current)
	assert.Equal(t, AnonymousQuotaLimit, quotaErr.Limit)
	assert.True(t, errors.Is(err, ErrQuotaExceeded))

	// another address is unaffected
	assert.NoError(t, guard.CheckAndAdmit(ctx, "10.1.1.2"))
}

func TestQuotaGuardIgnoresOwnedURLs(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryURLRepository()
	guard := NewQuotaGuard(repo)

	for _, code := range []string{"own01", "own02", "own03", "own04"} {
		require.NoError(t, repo.Create(ctx, &entities.URL{
			LongURL:   "https://example.com",
			ShortCode: code,
			OwnerID:   strPtr("3b241101-e2bb-4255-8caf-4136c566a962"),
			IsActive:  true,
		}))
	}

	usage, err := guard.Usage(ctx, "10.1.1.1")
	require.NoError(t, err)
	assert.Equal(t, &QuotaUsage{Current: 0, Limit: 3, Remaining: 3}, usage)
}

func TestQuotaGuardReset(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryURLRepository()
	guard := NewQuotaGuard(repo)

	seedAnonymous(t, repo, "anon1", "10.1.1.1")
	seedAnonymous(t, repo, "anon2", "10.9.9.9")

	codes, err := guard.Reset(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"anon1", "anon2"}, codes)

	usage, err := guard.Usage(ctx, "10.1.1.1")
	require.NoError(t, err)
	assert.Equal(t, 3, usage.Remaining)

	codes, err = guard.Reset(ctx)
	require.NoError(t, err)
	assert.Empty(t, codes)
}
