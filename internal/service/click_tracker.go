package service

import (
	"context"
	"errors"
	"fmt"

	"shrinkr/internal/entities"
	"shrinkr/internal/repository"
)

// ClickTracker counts a click with one atomic find-and-increment
type ClickTracker struct {
	repo repository.URLRepository
}

func NewClickTracker(repo repository.URLRepository) *ClickTracker {
	return &ClickTracker{repo: repo}
}

// Increment returns the URL after the click was counted, or ErrNotFound
// when the code no longer exists
func (t *ClickTracker) Increment(ctx context.Context, shortCode string) (*entities.URL, error) {
	url, err := t.repo.IncrementClickCount(ctx, shortCode)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return url, nil
}
