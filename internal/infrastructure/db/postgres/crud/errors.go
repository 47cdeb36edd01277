package crud

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("unique constraint violated")
	ErrStorage  = errors.New("storage failure")
)

const uniqueViolationCode = "23505"

// Translate classifies a driver error: no rows becomes ErrNotFound, a
// unique violation becomes ErrConflict, everything else is wrapped in
// ErrStorage so callers can surface a generic message while the detail
// stays available for server-side logs.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrConflict
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
