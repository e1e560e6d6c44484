package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrReservedSlug    = errors.New("short code is reserved")
	ErrSlugTaken       = errors.New("short code is already taken")
	ErrQuotaExceeded   = errors.New("anonymous quota exceeded")
	ErrNotFound        = errors.New("short URL not found")
	ErrGone            = errors.New("short URL has expired")
	ErrAccessDenied    = errors.New("URL not found")
	ErrUnauthenticated = errors.New("authentication required")
	ErrInternal        = errors.New("internal error")

	ErrUserExists         = errors.New("user with this email or username already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError carries a message meant to be shown to the caller as is
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// QuotaExceededError reports the address usage at the time of rejection
type QuotaExceededError struct {
	Current int
	Limit   int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("anonymous quota exceeded: %d of %d links used, sign in to create more", e.Current, e.Limit)
}

func (e *QuotaExceededError) Unwrap() error { return ErrQuotaExceeded }
