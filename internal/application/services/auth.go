package services

import (
	"context"
	"errors"

	"account-manager-api/internal/application/ports"
	"account-manager-api/internal/domain/user"
	"account-manager-api/internal/infrastructure/jwt"
)

var ErrFailedToGenerateToken = errors.New("failed to generate token")

type AuthService struct {
	users      user.Repository
	hasher     ports.PasswordHasher
	jwtService *jwt.Service
}

func NewAuthService(
	users user.Repository,
	hasher ports.PasswordHasher,
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		users:      users,
		hasher:     hasher,
		jwtService: jwtService,
	}
}

// Login authenticates by email and password and issues a token. An
// unknown email, a deactivated account and a wrong password all fail
// with user.ErrInvalidCredentials — the response carries no signal
// about which emails exist.
func (as *AuthService) Login(ctx context.Context, email, password string) (string, *user.Public, error) {
	u, err := as.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", nil, user.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !u.IsActive {
		return "", nil, user.ErrInvalidCredentials
	}
	if !as.hasher.Verify(password, u.PasswordHash, u.PasswordSalt) {
		return "", nil, user.ErrInvalidCredentials
	}

	token, err := as.jwtService.Issue(u.ID.String(), u.Email, string(u.Role))
	if err != nil {
		return "", nil, ErrFailedToGenerateToken
	}

	pub := u.Public()

	return token, &pub, nil
}
