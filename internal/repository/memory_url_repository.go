package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"shrinkr/internal/entities"
)

// memoryURLRepository keeps URLs in process memory. A single mutex makes
// every operation atomic, which gives the same uniqueness and increment
// guarantees the Postgres implementation gets from the database.
type memoryURLRepository struct {
	mu     sync.Mutex
	byCode map[string]*entities.URL
	byID   map[string]*entities.URL
}

var _ URLRepository = (*memoryURLRepository)(nil)

// NewMemoryURLRepository creates an empty in-memory URL repository
func NewMemoryURLRepository() URLRepository {
	return &memoryURLRepository{
		byCode: make(map[string]*entities.URL),
		byID:   make(map[string]*entities.URL),
	}
}

func cloneURL(u *entities.URL) *entities.URL {
	c := *u
	if u.ExpiresAt != nil {
		t := *u.ExpiresAt
		c.ExpiresAt = &t
	}
	if u.OwnerID != nil {
		s := *u.OwnerID
		c.OwnerID = &s
	}
	if u.CreatorAddress != nil {
		s := *u.CreatorAddress
		c.CreatorAddress = &s
	}
	return &c
}

func (r *memoryURLRepository) Create(_ context.Context, url *entities.URL) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byCode[url.ShortCode]; taken {
		return ErrDuplicateShortCode
	}

	url.ID = uuid.NewString()
	url.ClickCount = 0
	stored := cloneURL(url)
	r.byCode[stored.ShortCode] = stored
	r.byID[stored.ID] = stored
	return nil
}

func (r *memoryURLRepository) ExistsByShortCode(_ context.Context, shortCode string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byCode[shortCode]
	return ok, nil
}

func (r *memoryURLRepository) FindByShortCode(_ context.Context, shortCode string) (*entities.URL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byCode[shortCode]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneURL(u), nil
}

func (r *memoryURLRepository) IncrementClickCount(_ context.Context, shortCode string) (*entities.URL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byCode[shortCode]
	if !ok {
		return nil, ErrNotFound
	}
	u.ClickCount++
	return cloneURL(u), nil
}

func (r *memoryURLRepository) ToggleFavorite(_ context.Context, id, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok || !u.IsOwnedBy(ownerID) {
		return false, ErrNotFound
	}
	u.IsFavorite = !u.IsFavorite
	return u.IsFavorite, nil
}

func (r *memoryURLRepository) GetByOwner(_ context.Context, ownerID string) ([]*entities.URL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	urls := []*entities.URL{}
	for _, u := range r.byID {
		if u.IsOwnedBy(ownerID) {
			urls = append(urls, cloneURL(u))
		}
	}
	sort.Slice(urls, func(i, j int) bool {
		return urls[i].CreatedAt.After(urls[j].CreatedAt)
	})
	return urls, nil
}

func (r *memoryURLRepository) DeleteOwned(_ context.Context, id, ownerID string) (*entities.URL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok || !u.IsOwnedBy(ownerID) {
		return nil, ErrNotFound
	}
	r.remove(u)
	return cloneURL(u), nil
}

func (r *memoryURLRepository) UpdateExpiresAtOwned(_ context.Context, id, ownerID string, expiresAt time.Time) (*entities.URL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok || !u.IsOwnedBy(ownerID) {
		return nil, ErrNotFound
	}
	t := expiresAt
	u.ExpiresAt = &t
	return cloneURL(u), nil
}

func (r *memoryURLRepository) CountAnonymousByAddress(_ context.Context, address string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, u := range r.byID {
		if u.IsAnonymous() && u.CreatorAddress != nil && *u.CreatorAddress == address {
			count++
		}
	}
	return count, nil
}

func (r *memoryURLRepository) DeleteAnonymous(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	codes := []string{}
	for _, u := range r.byID {
		if u.IsAnonymous() && u.CreatorAddress != nil {
			r.remove(u)
			codes = append(codes, u.ShortCode)
		}
	}
	return codes, nil
}

func (r *memoryURLRepository) DeleteExpiredBefore(_ context.Context, cutoff time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	codes := []string{}
	for _, u := range r.byID {
		if u.ExpiresAt != nil && u.ExpiresAt.Before(cutoff) {
			r.remove(u)
			codes = append(codes, u.ShortCode)
		}
	}
	return codes, nil
}

// remove must be called with mu held
func (r *memoryURLRepository) remove(u *entities.URL) {
	delete(r.byCode, u.ShortCode)
	delete(r.byID, u.ID)
}
