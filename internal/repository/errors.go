package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateShortCode = errors.New("short code already exists")
	ErrDuplicateUser      = errors.New("user already exists")
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation
const uniqueViolation = pq.ErrorCode("23505")

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
