package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const otherUser = "0d7f5a3e-8c1b-4f26-9a0e-5b9c2d4e6f70"

func TestToggleFavoriteTwiceRestores(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	created := createOwned(t, env, "fav-me", "7d")

	resp, err := env.svc.ToggleFavorite(ctx, created.ID, testOwner)
	require.NoError(t, err)
	assert.True(t, resp.IsFavorite)

	resp, err = env.svc.ToggleFavorite(ctx, created.ID, testOwner)
	require.NoError(t, err)
	assert.False(t, resp.IsFavorite)
}

func TestToggleFavoriteByNonOwner(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	created := createOwned(t, env, "not-yours", "7d")

	for i := 0; i < 2; i++ {
		_, err := env.svc.ToggleFavorite(ctx, created.ID, otherUser)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	}

	list, err := env.svc.GetUserURLs(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, list.URLs, 1)
	assert.False(t, list.URLs[0].IsFavorite)
}

func TestToggleFavoriteUnknownOrMalformedID(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	_, err := env.svc.ToggleFavorite(ctx, "7c9e6679-7425-40de-944b-e07fc1f90ae7", testOwner)
	assert.True(t, errors.Is(err, ErrAccessDenied))

	_, err = env.svc.ToggleFavorite(ctx, "not-a-uuid", testOwner)
	assert.True(t, errors.Is(err, ErrAccessDenied))
}

func TestToggleFavoriteRequiresUser(t *testing.T) {
	env := newTestEnv(t, false)
	created := createOwned(t, env, "anon-try", "7d")

	_, err := env.svc.ToggleFavorite(context.Background(), created.ID, "")
	assert.True(t, errors.Is(err, ErrUnauthenticated))
}

func TestAnonymousURLsHaveNoOwner(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	created, err := env.svc.CreateShortURL(ctx, newCreateRequest("https://example.com"), Anonymous("10.0.0.8"))
	require.NoError(t, err)

	_, err = env.svc.ToggleFavorite(ctx, created.ID, testOwner)
	assert.True(t, errors.Is(err, ErrAccessDenied))
}

func TestDeleteAndRenewAreOwnerScoped(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	created := createOwned(t, env, "mine-only", "5h")

	_, err := env.svc.UpdateExpiration(ctx, created.ID, otherUser, "14d")
	assert.True(t, errors.Is(err, ErrAccessDenied))
	assert.True(t, errors.Is(env.svc.DeleteURL(ctx, created.ID, otherUser), ErrAccessDenied))

	env.clock.Advance(6 * time.Hour)
	renewed, err := env.svc.UpdateExpiration(ctx, created.ID, testOwner, "1d")
	require.NoError(t, err)
	assert.Equal(t, string(StatusActive), renewed.Status)

	result, err := env.svc.Resolve(ctx, created.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ClickCount)

	require.NoError(t, env.svc.DeleteURL(ctx, created.ID, testOwner))
	assert.True(t, errors.Is(env.svc.DeleteURL(ctx, created.ID, testOwner), ErrAccessDenied))
}
