package entities

import "time"

// User represents a user entity in the database
type User struct {
	ID           string    `json:"id" db:"id"` // UUID
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Don't expose password hash in JSON
	AvatarRef    *string   `json:"avatar_ref,omitempty" db:"avatar_ref"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
