package ports

import (
	"context"

	"github.com/google/uuid"

	"account-manager-api/internal/domain/query"
	"account-manager-api/internal/domain/user"
)

// UserService is the account lifecycle use-case surface. Every return
// value is the public projection; password hash and salt never leave
// the service boundary.
type UserService interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.Public, error)
	FindAll(ctx context.Context, p query.Params) ([]user.Public, error)
	FindPage(ctx context.Context, p query.Params, pg query.Page) (*query.Result[user.Public], error)
	Create(ctx context.Context, in user.CreateInput) (*user.Public, error)
	VerifyPassword(u *user.User, candidate string) bool
	UpdateProfile(ctx context.Context, id uuid.UUID, in user.UpdateInput) (*user.Public, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, current, next string) (*user.Public, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*user.Public, error)
	Reactivate(ctx context.Context, id uuid.UUID) (*user.Public, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
