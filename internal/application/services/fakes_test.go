package services

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	"account-manager-api/internal/domain/file"
	"account-manager-api/internal/domain/query"
	"account-manager-api/internal/domain/user"
	"account-manager-api/internal/infrastructure/mq"
)

// testCounter registers nothing with the default registry so repeated
// test runs in one process cannot collide.
func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_general_counters"},
		[]string{"result"},
	)
}

type fakeUserRepo struct {
	ListFunc           func(ctx context.Context, p query.Params) (user.Users, error)
	PageFunc           func(ctx context.Context, p query.Params, pg query.Page) (*query.Result[*user.User], error)
	ByIDFunc           func(ctx context.Context, id uuid.UUID) (*user.User, error)
	ByEmailFunc        func(ctx context.Context, email string) (*user.User, error)
	CreateFunc         func(ctx context.Context, u *user.User) (*user.User, error)
	UpdateFunc         func(ctx context.Context, id uuid.UUID, in user.UpdateInput) (*user.User, error)
	UpdatePasswordFunc func(ctx context.Context, id uuid.UUID, hash, salt string) (*user.User, error)
	SetActiveFunc      func(ctx context.Context, id uuid.UUID, active bool) (*user.User, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) (*user.User, error)

	createCalls int
}

func (f *fakeUserRepo) List(ctx context.Context, p query.Params) (user.Users, error) {
	return f.ListFunc(ctx, p)
}

func (f *fakeUserRepo) Page(ctx context.Context, p query.Params, pg query.Page) (*query.Result[*user.User], error) {
	return f.PageFunc(ctx, p, pg)
}

func (f *fakeUserRepo) ByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return f.ByIDFunc(ctx, id)
}

func (f *fakeUserRepo) ByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.ByEmailFunc == nil {
		return nil, user.ErrNotFound
	}
	return f.ByEmailFunc(ctx, email)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	f.createCalls++
	return f.CreateFunc(ctx, u)
}

func (f *fakeUserRepo) Update(ctx context.Context, id uuid.UUID, in user.UpdateInput) (*user.User, error) {
	return f.UpdateFunc(ctx, id, in)
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash, salt string) (*user.User, error) {
	return f.UpdatePasswordFunc(ctx, id, hash, salt)
}

func (f *fakeUserRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*user.User, error) {
	return f.SetActiveFunc(ctx, id, active)
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return f.DeleteFunc(ctx, id)
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type fakeFileRepo struct {
	ByOwnerFunc       func(ctx context.Context, ot file.OwnerType, oid uuid.UUID, p query.Params, pg query.Page) (*query.Result[*file.File], error)
	CurrentFunc       func(ctx context.Context, ot file.OwnerType, oid uuid.UUID, ft file.Type) (*file.File, error)
	CreateFunc        func(ctx context.Context, f *file.File) (*file.File, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) (*file.File, error)
	DeleteByOwnerFunc func(ctx context.Context, ot file.OwnerType, oid uuid.UUID) (file.Files, error)

	deletedIDs []uuid.UUID
}

func (f *fakeFileRepo) ByOwner(ctx context.Context, ot file.OwnerType, oid uuid.UUID, p query.Params, pg query.Page) (*query.Result[*file.File], error) {
	return f.ByOwnerFunc(ctx, ot, oid, p, pg)
}

func (f *fakeFileRepo) Current(ctx context.Context, ot file.OwnerType, oid uuid.UUID, ft file.Type) (*file.File, error) {
	if f.CurrentFunc == nil {
		return nil, file.ErrNotFound
	}
	return f.CurrentFunc(ctx, ot, oid, ft)
}

func (f *fakeFileRepo) Create(ctx context.Context, in *file.File) (*file.File, error) {
	return f.CreateFunc(ctx, in)
}

func (f *fakeFileRepo) Delete(ctx context.Context, id uuid.UUID) (*file.File, error) {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.DeleteFunc(ctx, id)
}

func (f *fakeFileRepo) DeleteByOwner(ctx context.Context, ot file.OwnerType, oid uuid.UUID) (file.Files, error) {
	if f.DeleteByOwnerFunc == nil {
		return nil, nil
	}
	return f.DeleteByOwnerFunc(ctx, ot, oid)
}

type fakeStore struct {
	saved   []string
	deleted []string

	SaveErr   error
	DeleteErr error
}

func (s *fakeStore) Save(ctx context.Context, key string, r io.Reader) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.saved = append(s.saved, key)
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStore) PublicURL(key string) string { return "http://files.test/" + key }

// fakeHasher hashes by prefixing; Verify checks the prefix. Good enough
// to observe which credentials a service stored or compared.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, string, error) {
	return "h:" + password, "s:" + password, nil
}

func (fakeHasher) Verify(password, hash, salt string) bool {
	return strings.TrimPrefix(hash, "h:") == password
}

type fakeMQ struct {
	in chan mq.Event
}

func newFakeMQ() *fakeMQ {
	return &fakeMQ{in: make(chan mq.Event, 16)}
}

func (m *fakeMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (m *fakeMQ) Init() error                                   { return nil }
func (m *fakeMQ) PublisherWorker(ctx context.Context)           {}
func (m *fakeMQ) GetInputChan() chan mq.Event                   { return m.in }
func (m *fakeMQ) GetConn() *amqp091.Connection                  { return nil }
