package file

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"account-manager-api/internal/domain/query"
)

var (
	ErrNotFound = errors.New("file not found")
	ErrConflict = errors.New("current file already exists for owner and type")
)

type Repository interface {
	ByOwner(ctx context.Context, ot OwnerType, oid uuid.UUID, p query.Params, pg query.Page) (*query.Result[*File], error)
	Current(ctx context.Context, ot OwnerType, oid uuid.UUID, ft Type) (*File, error)
	Create(ctx context.Context, f *File) (*File, error)
	Delete(ctx context.Context, id uuid.UUID) (*File, error)
	DeleteByOwner(ctx context.Context, ot OwnerType, oid uuid.UUID) (Files, error)
}
