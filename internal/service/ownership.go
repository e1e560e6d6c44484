package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shrinkr/internal/entities"
	"shrinkr/internal/repository"
)

// OwnershipGuard runs mutations that only a URL's owner may perform. Each
// repository call is scoped to the owner in the same query, so a URL that
// belongs to someone else looks exactly like one that does not exist.
type OwnershipGuard struct {
	repo repository.URLRepository
}

func NewOwnershipGuard(repo repository.URLRepository) *OwnershipGuard {
	return &OwnershipGuard{repo: repo}
}

// ToggleFavorite flips the favorite flag and returns the new value.
// Two calls in a row restore the original value.
func (g *OwnershipGuard) ToggleFavorite(ctx context.Context, urlID, actingUserID string) (bool, error) {
	if err := checkOwnedTarget(urlID, actingUserID); err != nil {
		return false, err
	}

	isFavorite, err := g.repo.ToggleFavorite(ctx, urlID, actingUserID)
	if err != nil {
		return false, mapOwnedErr(err)
	}
	return isFavorite, nil
}

// Delete removes an owned URL and returns what was removed
func (g *OwnershipGuard) Delete(ctx context.Context, urlID, actingUserID string) (*entities.URL, error) {
	if err := checkOwnedTarget(urlID, actingUserID); err != nil {
		return nil, err
	}

	url, err := g.repo.DeleteOwned(ctx, urlID, actingUserID)
	if err != nil {
		return nil, mapOwnedErr(err)
	}
	return url, nil
}

// SetExpiry replaces an owned URL's expiry
func (g *OwnershipGuard) SetExpiry(ctx context.Context, urlID, actingUserID string, expiresAt time.Time) (*entities.URL, error) {
	if err := checkOwnedTarget(urlID, actingUserID); err != nil {
		return nil, err
	}

	url, err := g.repo.UpdateExpiresAtOwned(ctx, urlID, actingUserID, expiresAt)
	if err != nil {
		return nil, mapOwnedErr(err)
	}
	return url, nil
}

// checkOwnedTarget rejects calls that cannot match any owned row.
// A malformed id is reported like a missing one.
func checkOwnedTarget(urlID, actingUserID string) error {
	if actingUserID == "" {
		return ErrUnauthenticated
	}
	if _, err := uuid.Parse(urlID); err != nil {
		return ErrAccessDenied
	}
	return nil
}

func mapOwnedErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrAccessDenied
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
