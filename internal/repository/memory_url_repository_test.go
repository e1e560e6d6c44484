package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shrinkr/internal/entities"
)

var now = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func newURL(code string, owner, address *string, expiresAt *time.Time) *entities.URL {
	return &entities.URL{
		LongURL:        "https://example.com/" + code,
		ShortCode:      code,
		OwnerID:        owner,
		CreatorAddress: address,
		CreatedAt:      now,
		ExpiresAt:      expiresAt,
		IsActive:       true,
	}
}

func TestMemoryCreateEnforcesUniqueCodes(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryURLRepository()

	first := newURL("abc1234", strPtr("owner"), nil, nil)
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEmpty(t, first.ID)

	err := repo.Create(ctx, newURL("abc1234", strPtr("owner"), nil, nil))
	assert.True(t, errors.Is(err, ErrDuplicateShortCode))

	// codes are case-sensitive
	assert.NoError(t, repo.Create(ctx, newURL("ABC1234", strPtr("owner"), nil, nil)))
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryURLRepository()
	require.NoError(t, repo.Create(ctx, newURL("copied", strPtr("owner"), nil, nil)))

	found, err := repo.FindByShortCode(ctx, "copied")
	require.NoError(t, err)
	found.ClickCount = 99
	*found.OwnerID = "someone-else"

	again, err := repo.FindByShortCode(ctx, "copied")
	require.NoError(t, err)
	assert.Zero(t, again.ClickCount)
	assert.Equal(t, "owner", *again.OwnerID)
}

func TestMemoryIncrementIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryURLRepository()
	require.NoError(t, repo.Create(ctx, newURL("hot", nil, strPtr("10.0.0.1"), nil)))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.IncrementClickCount(ctx, "hot")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	url, err := repo.FindByShortCode(ctx, "hot")
	require.NoError(t, err)
	assert.Equal(t, int64(50), url.ClickCount)

	_, err = repo.IncrementClickCount(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryOwnerScopedOperations(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryURLRepository()
	url := newURL("owned", strPtr("alice"), nil, nil)
	require.NoError(t, repo.Create(ctx, url))

	_, err := repo.ToggleFavorite(ctx, url.ID, "bob")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = repo.UpdateExpiresAtOwned(ctx, url.ID, "bob", now)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = repo.DeleteOwned(ctx, url.ID, "bob")
	assert.True(t, errors.Is(err, ErrNotFound))

	fav, err := repo.ToggleFavorite(ctx, url.ID, "alice")
	require.NoError(t, err)
	assert.True(t, fav)

	updated, err := repo.UpdateExpiresAtOwned(ctx, url.ID, "alice", now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), *updated.ExpiresAt)

	deleted, err := repo.DeleteOwned(ctx, url.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "owned", deleted.ShortCode)

	exists, err := repo.ExistsByShortCode(ctx, "owned")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryGetByOwnerNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryURLRepository()

	older := newURL("older", strPtr("alice"), nil, nil)
	newer := newURL("newer", strPtr("alice"), nil, nil)
	newer.CreatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, newURL("bobs", strPtr("bob"), nil, nil)))

	urls, err := repo.GetByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.Equal(t, "newer", urls[0].ShortCode)
	assert.Equal(t, "older", urls[1].ShortCode)

	none, err := repo.GetByOwner(ctx, "carol")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryAnonymousCountAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryURLRepository()

	require.NoError(t, repo.Create(ctx, newURL("anon1", nil, strPtr("10.0.0.1"), nil)))
	require.NoError(t, repo.Create(ctx, newURL("anon2", nil, strPtr("10.0.0.1"), nil)))
	require.NoError(t, repo.Create(ctx, newURL("anon3", nil, strPtr("10.0.0.2"), nil)))
	require.NoError(t, repo.Create(ctx, newURL("mine", strPtr("alice"), nil, nil)))

	count, err := repo.CountAnonymousByAddress(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	codes, err := repo.DeleteAnonymous(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"anon1", "anon2", "anon3"}, codes)

	exists, err := repo.ExistsByShortCode(ctx, "mine")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryDeleteExpiredBefore(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryURLRepository()
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	require.NoError(t, repo.Create(ctx, newURL("stale", strPtr("alice"), nil, &past)))
	require.NoError(t, repo.Create(ctx, newURL("fresh", strPtr("alice"), nil, &future)))
	require.NoError(t, repo.Create(ctx, newURL("legacy", strPtr("alice"), nil, nil)))

	codes, err := repo.DeleteExpiredBefore(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"stale"}, codes)

	urls, err := repo.GetByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, urls, 2)
}

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	user := &entities.User{Username: "ada", Email: "ada@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	err := repo.Create(ctx, &entities.User{Username: "other", Email: "ADA@example.com"})
	assert.True(t, errors.Is(err, ErrDuplicateUser))
	err = repo.Create(ctx, &entities.User{Username: "ada", Email: "new@example.com"})
	assert.True(t, errors.Is(err, ErrDuplicateUser))

	found, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", byID.Username)

	_, err = repo.FindByID(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
