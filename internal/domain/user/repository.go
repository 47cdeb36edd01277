package user

import (
	"context"

	"github.com/google/uuid"

	"account-manager-api/internal/domain/query"
)

// Repository is the persistence port for accounts. Implementations
// translate storage failures into the package's sentinel errors; raw
// driver errors never cross this boundary.
type Repository interface {
	List(ctx context.Context, p query.Params) (Users, error)
	Page(ctx context.Context, p query.Params, pg query.Page) (*query.Result[*User], error)
	ByID(ctx context.Context, id uuid.UUID) (*User, error)
	ByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) (*User, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash, salt string) (*User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) (*User, error)
	Count(ctx context.Context) (int64, error)
}
