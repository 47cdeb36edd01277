package file

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"account-manager-api/internal/domain/file"
	"account-manager-api/internal/domain/query"
	"account-manager-api/internal/infrastructure/db/postgres/crud"
)

type Repository struct {
	crud *crud.Repo[File]
}

func NewRepository(db crud.DB) file.Repository {
	return &Repository{
		crud: crud.New[File](db, crud.Config{
			Table:        "files",
			Columns:      []string{"id", "label", "storage_path", "download_url", "file_type", "owner_type", "owner_id", "mime_type", "size_bytes", "created_at", "updated_at"},
			SearchFields: []string{"label"},
			SortFields: map[string]struct{}{
				"label":      {},
				"file_type":  {},
				"created_at": {},
			},
			DefaultSort: "created_at DESC",
		}),
	}
}

func (r *Repository) ByOwner(ctx context.Context, ot file.OwnerType, oid uuid.UUID, p query.Params, pg query.Page) (*query.Result[*file.File], error) {
	res, err := r.crud.ListPage(ctx, crud.Where{"owner_type": string(ot), "owner_id": oid}, p, pg)
	if err != nil {
		return nil, translate(err)
	}
	return &query.Result[*file.File]{
		Items:    fromDBModels(res.Items),
		Total:    res.Total,
		Page:     res.Page,
		PageSize: res.PageSize,
	}, nil
}

func (r *Repository) Current(ctx context.Context, ot file.OwnerType, oid uuid.UUID, ft file.Type) (*file.File, error) {
	f, err := r.crud.QueryOne(ctx, SelectCurrentFile, string(ot), oid, string(ft))
	if err != nil {
		return nil, translate(err)
	}
	return fromDBModel(f), nil
}

func (r *Repository) Create(ctx context.Context, req *file.File) (*file.File, error) {
	f, err := r.crud.QueryOne(ctx, InsertFile,
		req.ID, req.Label, req.StoragePath, req.DownloadURL,
		string(req.FileType), string(req.OwnerType), req.OwnerID,
		req.MimeType, req.SizeBytes,
	)
	if err != nil {
		return nil, translate(err)
	}
	return fromDBModel(f), nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (*file.File, error) {
	f, err := r.crud.QueryOne(ctx, DeleteFileByID, id)
	if err != nil {
		return nil, translate(err)
	}
	return fromDBModel(f), nil
}

func (r *Repository) DeleteByOwner(ctx context.Context, ot file.OwnerType, oid uuid.UUID) (file.Files, error) {
	models, err := r.crud.QueryMany(ctx, DeleteFilesByOwner, string(ot), oid)
	if err != nil {
		return nil, translate(err)
	}
	return fromDBModels(models), nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, crud.ErrNotFound):
		return file.ErrNotFound
	case errors.Is(err, crud.ErrConflict):
		return file.ErrConflict
	default:
		return err
	}
}
