package entities

import "time"

// URL represents a shortened URL entity in the database
type URL struct {
	ID             string     `json:"id" db:"id"` // UUID
	LongURL        string     `json:"long_url" db:"long_url"`
	ShortCode      string     `json:"short_code" db:"short_code"`
	OwnerID        *string    `json:"owner_id,omitempty" db:"owner_id"` // nil for anonymous URLs
	CreatorAddress *string    `json:"-" db:"creator_address"`           // only set when OwnerID is nil
	ClickCount     int64      `json:"click_count" db:"click_count"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty" db:"expires_at"` // nil only on legacy rows
	IsFavorite     bool       `json:"is_favorite" db:"is_favorite"`
	IsActive       bool       `json:"is_active" db:"is_active"`
}

// IsAnonymous reports whether the URL was created without an authenticated owner
func (u *URL) IsAnonymous() bool {
	return u.OwnerID == nil
}

// IsOwnedBy reports whether userID owns the URL
func (u *URL) IsOwnedBy(userID string) bool {
	return u.OwnerID != nil && *u.OwnerID == userID
}
