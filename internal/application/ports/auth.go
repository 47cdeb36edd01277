package ports

import (
	"context"

	"account-manager-api/internal/domain/user"
)

// Auth is the authentication use case. Login returns the same
// ErrInvalidCredentials for an unknown email and a wrong password so
// callers learn nothing about which emails exist.
type Auth interface {
	Login(ctx context.Context, email, password string) (string, *user.Public, error)
}
