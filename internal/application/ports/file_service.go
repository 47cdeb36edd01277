package ports

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"account-manager-api/internal/domain/file"
	"account-manager-api/internal/domain/query"
)

type FileService interface {
	ListByOwner(ctx context.Context, ot file.OwnerType, oid uuid.UUID, p query.Params, pg query.Page) (*query.Result[*file.File], error)
	Attach(ctx context.Context, ot file.OwnerType, oid uuid.UUID, ft file.Type, in *multipart.FileHeader) (*file.File, error)
	Remove(ctx context.Context, id uuid.UUID) (*file.File, error)
}
