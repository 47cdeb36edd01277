package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"account-manager-api/internal/domain/query"
	"account-manager-api/internal/domain/user"
	"account-manager-api/internal/infrastructure/db/postgres/crud"
)

type Repository struct {
	crud *crud.Repo[User]
}

func NewRepository(db crud.DB) user.Repository {
	return &Repository{
		crud: crud.New[User](db, crud.Config{
			Table:        "users",
			Columns:      []string{"id", "email", "name", "password_hash", "password_salt", "role", "is_active", "created_at", "updated_at"},
			SearchFields: []string{"email", "name"},
			SortFields: map[string]struct{}{
				"email":      {},
				"name":       {},
				"role":       {},
				"created_at": {},
				"updated_at": {},
			},
			DefaultSort: "created_at DESC",
		}),
	}
}

func (r *Repository) List(ctx context.Context, p query.Params) (user.Users, error) {
	models, err := r.crud.List(ctx, nil, p)
	if err != nil {
		return nil, translate(err)
	}
	return fromDBModels(models), nil
}

func (r *Repository) Page(ctx context.Context, p query.Params, pg query.Page) (*query.Result[*user.User], error) {
	res, err := r.crud.ListPage(ctx, nil, p, pg)
	if err != nil {
		return nil, translate(err)
	}
	return &query.Result[*user.User]{
		Items:    fromDBModels(res.Items),
		Total:    res.Total,
		Page:     res.Page,
		PageSize: res.PageSize,
	}, nil
}

func (r *Repository) ByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := r.crud.GetBy(ctx, "id", id)
	if err != nil {
		return nil, translate(err)
	}
	return fromDBModel(u), nil
}

func (r *Repository) ByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := r.crud.QueryOne(ctx, SelectUserByEmail, email)
	if err != nil {
		return nil, translate(err)
	}
	return fromDBModel(u), nil
}

func (r *Repository) Create(ctx context.Context, req *user.User) (*user.User, error) {
	u, err := r.crud.QueryOne(ctx, InsertUser,
		req.ID, req.Email, req.Name, req.PasswordHash, req.PasswordSalt, string(req.Role), req.IsActive,
	)
	if err != nil {
		return nil, translate(err)
	}
	return fromDBModel(u), nil
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, in user.UpdateInput) (*user.User, error) {
	u, err := r.crud.QueryOne(ctx, UpdateUserByID, in.Email, in.Name, id)
	if err != nil {
		return nil, translate(err)
	}
	return fromDBModel(u), nil
}

func (r *Repository) UpdatePassword(ctx context.Context, id uuid.UUID, hash, salt string) (*user.User, error) {
	u, err := r.crud.QueryOne(ctx, UpdatePasswordByID, hash, salt, id)
	if err != nil {
		return nil, translate(err)
	}
	return fromDBModel(u), nil
}

func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*user.User, error) {
	u, err := r.crud.QueryOne(ctx, SetActiveByID, active, id)
	if err != nil {
		return nil, translate(err)
	}
	return fromDBModel(u), nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := r.crud.QueryOne(ctx, DeleteUserByID, id)
	if err != nil {
		return nil, translate(err)
	}
	return fromDBModel(u), nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.crud.Count(ctx, nil)
}

// translate narrows the generic storage classification to the user
// domain: the only unique constraint on users is the email index.
func translate(err error) error {
	switch {
	case errors.Is(err, crud.ErrNotFound):
		return user.ErrNotFound
	case errors.Is(err, crud.ErrConflict):
		return user.ErrEmailTaken
	default:
		return err
	}
}
