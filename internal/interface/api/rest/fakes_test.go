package rest

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"account-manager-api/internal/domain/file"
	"account-manager-api/internal/domain/query"
	"account-manager-api/internal/domain/user"
	"account-manager-api/internal/infrastructure/jwt"
)

const testSecret = "test-secret"

func testJWT() *jwt.Service {
	return jwt.New(testSecret, time.Hour)
}

func adminToken(s *jwt.Service) string {
	tok, _ := s.Issue(uuid.NewString(), "root@example.com", string(user.RoleAdmin))
	return tok
}

func userToken(s *jwt.Service) string {
	tok, _ := s.Issue(uuid.NewString(), "ada@example.com", string(user.RoleUser))
	return tok
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func nopLogger() *zap.Logger { return zap.NewNop() }

type FakeUserService struct {
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*user.Public, error)
	FindAllFunc        func(ctx context.Context, p query.Params) ([]user.Public, error)
	FindPageFunc       func(ctx context.Context, p query.Params, pg query.Page) (*query.Result[user.Public], error)
	CreateFunc         func(ctx context.Context, in user.CreateInput) (*user.Public, error)
	UpdateProfileFunc  func(ctx context.Context, id uuid.UUID, in user.UpdateInput) (*user.Public, error)
	UpdatePasswordFunc func(ctx context.Context, id uuid.UUID, current, next string) (*user.Public, error)
	DeactivateFunc     func(ctx context.Context, id uuid.UUID) (*user.Public, error)
	ReactivateFunc     func(ctx context.Context, id uuid.UUID) (*user.Public, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
}

func (f *FakeUserService) FindByID(ctx context.Context, id uuid.UUID) (*user.Public, error) {
	return f.FindByIDFunc(ctx, id)
}

func (f *FakeUserService) FindAll(ctx context.Context, p query.Params) ([]user.Public, error) {
	return f.FindAllFunc(ctx, p)
}

func (f *FakeUserService) FindPage(ctx context.Context, p query.Params, pg query.Page) (*query.Result[user.Public], error) {
	return f.FindPageFunc(ctx, p, pg)
}

func (f *FakeUserService) Create(ctx context.Context, in user.CreateInput) (*user.Public, error) {
	return f.CreateFunc(ctx, in)
}

func (f *FakeUserService) VerifyPassword(u *user.User, candidate string) bool { return false }

func (f *FakeUserService) UpdateProfile(ctx context.Context, id uuid.UUID, in user.UpdateInput) (*user.Public, error) {
	return f.UpdateProfileFunc(ctx, id, in)
}

func (f *FakeUserService) UpdatePassword(ctx context.Context, id uuid.UUID, current, next string) (*user.Public, error) {
	return f.UpdatePasswordFunc(ctx, id, current, next)
}

func (f *FakeUserService) Deactivate(ctx context.Context, id uuid.UUID) (*user.Public, error) {
	return f.DeactivateFunc(ctx, id)
}

func (f *FakeUserService) Reactivate(ctx context.Context, id uuid.UUID) (*user.Public, error) {
	return f.ReactivateFunc(ctx, id)
}

func (f *FakeUserService) Delete(ctx context.Context, id uuid.UUID) error {
	return f.DeleteFunc(ctx, id)
}

type FakeAuth struct {
	LoginFunc func(ctx context.Context, email, password string) (string, *user.Public, error)
}

func (f *FakeAuth) Login(ctx context.Context, email, password string) (string, *user.Public, error) {
	return f.LoginFunc(ctx, email, password)
}

type FakeFileService struct {
	ListByOwnerFunc func(ctx context.Context, ot file.OwnerType, oid uuid.UUID, p query.Params, pg query.Page) (*query.Result[*file.File], error)
	AttachFunc      func(ctx context.Context, ot file.OwnerType, oid uuid.UUID, ft file.Type, in *multipart.FileHeader) (*file.File, error)
	RemoveFunc      func(ctx context.Context, id uuid.UUID) (*file.File, error)
}

func (f *FakeFileService) ListByOwner(ctx context.Context, ot file.OwnerType, oid uuid.UUID, p query.Params, pg query.Page) (*query.Result[*file.File], error) {
	return f.ListByOwnerFunc(ctx, ot, oid, p, pg)
}

func (f *FakeFileService) Attach(ctx context.Context, ot file.OwnerType, oid uuid.UUID, ft file.Type, in *multipart.FileHeader) (*file.File, error) {
	return f.AttachFunc(ctx, ot, oid, ft, in)
}

func (f *FakeFileService) Remove(ctx context.Context, id uuid.UUID) (*file.File, error) {
	return f.RemoveFunc(ctx, id)
}

func somePublic() user.Public {
	return user.Public{
		ID:       uuid.New(),
		Email:    "ada@example.com",
		Name:     "Ada",
		Role:     user.RoleUser,
		IsActive: true,
	}
}
