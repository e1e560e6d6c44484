package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"shrinkr/internal/entities"
)

//go:generate mockgen -source=url_repository.go -destination=mocks/mock_url_repository.go -package=mocks

// URLRepository defines the interface for URL storage operations.
// Implementations must enforce short code uniqueness and increment clicks atomically.
type URLRepository interface {
	Create(ctx context.Context, url *entities.URL) error
	ExistsByShortCode(ctx context.Context, shortCode string) (bool, error)
	FindByShortCode(ctx context.Context, shortCode string) (*entities.URL, error)
	IncrementClickCount(ctx context.Context, shortCode string) (*entities.URL, error)
	ToggleFavorite(ctx context.Context, id, ownerID string) (bool, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*entities.URL, error)
	DeleteOwned(ctx context.Context, id, ownerID string) (*entities.URL, error)
	UpdateExpiresAtOwned(ctx context.Context, id, ownerID string, expiresAt time.Time) (*entities.URL, error)
	CountAnonymousByAddress(ctx context.Context, address string) (int, error)
	DeleteAnonymous(ctx context.Context) ([]string, error)
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) ([]string, error)
}

const urlColumns = `id, long_url, short_code, owner_id, creator_address, click_count,
	created_at, expires_at, is_favorite, is_active`

type urlRepository struct {
	db *sqlx.DB
}

var _ URLRepository = (*urlRepository)(nil)

// NewURLRepository creates a new Postgres-backed URL repository
func NewURLRepository(db *sqlx.DB) URLRepository {
	return &urlRepository{db: db}
}

// Create inserts a new URL. A short code collision surfaces as ErrDuplicateShortCode.
func (r *urlRepository) Create(ctx context.Context, url *entities.URL) error {
	query := `
		INSERT INTO urls (long_url, short_code, owner_id, creator_address, created_at, expires_at, is_favorite, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, click_count
	`

	var expiresAt interface{}
	if url.ExpiresAt != nil {
		expiresAt = url.ExpiresAt.UTC()
	}

	err := r.db.QueryRowxContext(ctx, query,
		url.LongURL,
		url.ShortCode,
		url.OwnerID,
		url.CreatorAddress,
		url.CreatedAt.UTC(),
		expiresAt,
		url.IsFavorite,
		url.IsActive,
	).Scan(&url.ID, &url.ClickCount)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateShortCode
		}
		return fmt.Errorf("failed to create URL: %w", err)
	}

	return nil
}

// ExistsByShortCode reports whether any URL, expired or not, holds the code
func (r *urlRepository) ExistsByShortCode(ctx context.Context, shortCode string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM urls WHERE short_code = $1)`, shortCode)
	if err != nil {
		return false, fmt.Errorf("failed to check short code: %w", err)
	}
	return exists, nil
}

// FindByShortCode finds a URL by its exact short code, including expired ones
func (r *urlRepository) FindByShortCode(ctx context.Context, shortCode string) (*entities.URL, error) {
	var url entities.URL
	err := r.db.GetContext(ctx, &url, `SELECT `+urlColumns+` FROM urls WHERE short_code = $1`, shortCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find URL: %w", err)
	}
	return &url, nil
}

// IncrementClickCount adds one click and returns the updated row in a single statement
func (r *urlRepository) IncrementClickCount(ctx context.Context, shortCode string) (*entities.URL, error) {
	query := `
		UPDATE urls
		SET click_count = click_count + 1
		WHERE short_code = $1
		RETURNING ` + urlColumns

	var url entities.URL
	err := r.db.QueryRowxContext(ctx, query, shortCode).StructScan(&url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to increment click count: %w", err)
	}
	return &url, nil
}

// ToggleFavorite flips is_favorite on a URL the owner holds
func (r *urlRepository) ToggleFavorite(ctx context.Context, id, ownerID string) (bool, error) {
	query := `
		UPDATE urls
		SET is_favorite = NOT is_favorite
		WHERE id = $1 AND owner_id = $2
		RETURNING is_favorite
	`

	var isFavorite bool
	err := r.db.GetContext(ctx, &isFavorite, query, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	return isFavorite, nil
}

// GetByOwner retrieves all URLs for a specific user, newest first
func (r *urlRepository) GetByOwner(ctx context.Context, ownerID string) ([]*entities.URL, error) {
	query := `SELECT ` + urlColumns + ` FROM urls WHERE owner_id = $1 ORDER BY created_at DESC`

	urls := []*entities.URL{}
	if err := r.db.SelectContext(ctx, &urls, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to get URLs: %w", err)
	}
	return urls, nil
}

// DeleteOwned removes a URL the owner holds and returns the removed row
func (r *urlRepository) DeleteOwned(ctx context.Context, id, ownerID string) (*entities.URL, error) {
	query := `DELETE FROM urls WHERE id = $1 AND owner_id = $2 RETURNING ` + urlColumns

	var url entities.URL
	err := r.db.QueryRowxContext(ctx, query, id, ownerID).StructScan(&url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete URL: %w", err)
	}
	return &url, nil
}

// UpdateExpiresAtOwned sets a new expiry on a URL the owner holds
func (r *urlRepository) UpdateExpiresAtOwned(ctx context.Context, id, ownerID string, expiresAt time.Time) (*entities.URL, error) {
	query := `
		UPDATE urls
		SET expires_at = $1
		WHERE id = $2 AND owner_id = $3
		RETURNING ` + urlColumns

	var url entities.URL
	err := r.db.QueryRowxContext(ctx, query, expiresAt.UTC(), id, ownerID).StructScan(&url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update URL: %w", err)
	}
	return &url, nil
}

// CountAnonymousByAddress counts every anonymous URL created from address, expired ones included
func (r *urlRepository) CountAnonymousByAddress(ctx context.Context, address string) (int, error) {
	query := `SELECT COUNT(*) FROM urls WHERE owner_id IS NULL AND creator_address = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, address); err != nil {
		return 0, fmt.Errorf("failed to count anonymous URLs: %w", err)
	}
	return count, nil
}

// DeleteAnonymous removes all anonymous URLs and returns their short codes
func (r *urlRepository) DeleteAnonymous(ctx context.Context) ([]string, error) {
	query := `DELETE FROM urls WHERE owner_id IS NULL AND creator_address IS NOT NULL RETURNING short_code`

	codes := []string{}
	if err := r.db.SelectContext(ctx, &codes, query); err != nil {
		return nil, fmt.Errorf("failed to delete anonymous URLs: %w", err)
	}
	return codes, nil
}

// DeleteExpiredBefore removes URLs whose expiry is older than cutoff. Legacy rows without expiry are kept.
func (r *urlRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	query := `DELETE FROM urls WHERE expires_at IS NOT NULL AND expires_at < $1 RETURNING short_code`

	codes := []string{}
	if err := r.db.SelectContext(ctx, &codes, query, cutoff.UTC()); err != nil {
		return nil, fmt.Errorf("failed to purge expired URLs: %w", err)
	}
	return codes, nil
}
