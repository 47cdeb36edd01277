package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"account-manager-api/internal/application/ports"
	"account-manager-api/internal/domain/file"
	"account-manager-api/internal/domain/query"
	domain "account-manager-api/internal/domain/user"
	"account-manager-api/internal/infrastructure/mq"
	"account-manager-api/internal/validation"
)

type UserService struct {
	userRepository domain.Repository
	fileRepository file.Repository
	store          ports.ObjectStore
	hasher         ports.PasswordHasher
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	fileRepository file.Repository,
	store ports.ObjectStore,
	hasher ports.PasswordHasher,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		fileRepository: fileRepository,
		store:          store,
		hasher:         hasher,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindByID(ctx context.Context, id uuid.UUID) (*domain.Public, error) {
	u, err := us.userRepository.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pub := u.Public()

	return &pub, nil
}

func (us *UserService) FindAll(ctx context.Context, p query.Params) ([]domain.Public, error) {
	users, err := us.userRepository.List(ctx, p)
	if err != nil {
		return nil, err
	}

	return toPublic(users), nil
}

func (us *UserService) FindPage(ctx context.Context, p query.Params, pg query.Page) (*query.Result[domain.Public], error) {
	res, err := us.userRepository.Page(ctx, p, pg)
	if err != nil {
		return nil, err
	}

	return &query.Result[domain.Public]{
		Items:    toPublic(res.Items),
		Total:    res.Total,
		Page:     res.Page,
		PageSize: res.PageSize,
	}, nil
}

// Create registers an account. The email pre-check is a fast path only:
// the unique index on users.email is the authoritative guard, and a
// racing insert still comes back as ErrEmailTaken via the repository.
func (us *UserService) Create(ctx context.Context, in domain.CreateInput) (*domain.Public, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validation.IsEmail(email) {
		return nil, domain.ErrInvalidEmail
	}
	if !validation.IsStrongPassword(in.Password) {
		return nil, domain.ErrWeakPassword
	}

	if _, err := us.userRepository.ByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, salt, err := us.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	created, err := us.userRepository.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         role,
		IsActive:     active,
	})
	if err != nil {
		return nil, err
	}

	us.notify(created, http.MethodPost)
	us.mCounter.WithLabelValues("user_created_total").Inc()

	pub := created.Public()

	return &pub, nil
}

// VerifyPassword reports whether candidate matches the stored
// credentials. It never returns an error.
func (us *UserService) VerifyPassword(u *domain.User, candidate string) bool {
	return us.hasher.Verify(candidate, u.PasswordHash, u.PasswordSalt)
}

func (us *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, in domain.UpdateInput) (*domain.Public, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if !validation.IsEmail(in.Email) {
		return nil, domain.ErrInvalidEmail
	}
	in.Name = strings.TrimSpace(in.Name)

	updated, err := us.userRepository.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	us.notify(updated, http.MethodPut)
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	pub := updated.Public()

	return &pub, nil
}

func (us *UserService) UpdatePassword(ctx context.Context, id uuid.UUID, current, next string) (*domain.Public, error) {
	u, err := us.userRepository.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !us.hasher.Verify(current, u.PasswordHash, u.PasswordSalt) {
		return nil, domain.ErrInvalidCredentials
	}
	if !validation.IsStrongPassword(next) {
		return nil, domain.ErrWeakPassword
	}

	hash, salt, err := us.hasher.Hash(next)
	if err != nil {
		return nil, err
	}

	updated, err := us.userRepository.UpdatePassword(ctx, id, hash, salt)
	if err != nil {
		return nil, err
	}

	us.notify(updated, http.MethodPut)
	us.mCounter.WithLabelValues("user_password_updated_total").Inc()

	pub := updated.Public()

	return &pub, nil
}

// Deactivate and Reactivate toggle the active flag. Reapplying the same
// transition is a no-op success.
func (us *UserService) Deactivate(ctx context.Context, id uuid.UUID) (*domain.Public, error) {
	return us.setActive(ctx, id, false)
}

func (us *UserService) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Public, error) {
	return us.setActive(ctx, id, true)
}

func (us *UserService) setActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Public, error) {
	updated, err := us.userRepository.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}

	us.notify(updated, http.MethodPut)
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	pub := updated.Public()

	return &pub, nil
}

// Delete removes the account permanently along with its file metadata
// and backing objects. Metadata rows go first so a crash cannot leave a
// record pointing at a missing object.
func (us *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	removed, err := us.fileRepository.DeleteByOwner(ctx, file.OwnerUser, id)
	if err != nil {
		return err
	}
	for _, f := range removed {
		if err = us.store.Delete(ctx, f.StoragePath); err != nil {
			return err
		}
	}

	u, err := us.userRepository.Delete(ctx, id)
	if err != nil {
		return err
	}

	us.notify(u, http.MethodDelete)
	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

func (us *UserService) notify(u *domain.User, action string) {
	if u == nil {
		return
	}
	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  action,
		UserID:  u.ID.String(),
		Payload: u.Public(),
	}
}

func toPublic(users domain.Users) []domain.Public {
	out := make([]domain.Public, len(users))
	for idx, u := range users {
		out[idx] = u.Public()
	}

	return out
}
