package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"shrinkr/internal/entities"
)

type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

var _ UserRepository = (*memoryUserRepository)(nil)

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]*entities.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) || u.Username == user.Username {
			return ErrDuplicateUser
		}
	}

	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *u
	return &found, nil
}
