package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDailyLimit        = errors.New("daily limit reached")
)

const uniqueViolationCode = "23505"

// isUniqueViolation распознает нарушение уникального индекса Postgres.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
