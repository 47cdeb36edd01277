package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type (
	User struct {
		ID    uuid.UUID
		Email string
		Name  string

		PasswordHash string
		PasswordSalt string

		Role     Role
		IsActive bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)

// Public is the projection of a User that may cross the service
// boundary. It never carries the password hash or salt.
type Public struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) Public() Public {
	return Public{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// CreateInput is the use-case input for registering or admin-creating
// an account. Role defaults to USER and IsActive to true when unset.
type CreateInput struct {
	Email    string
	Password string
	Name     string
	Role     Role
	IsActive *bool
}

type UpdateInput struct {
	Email string
	Name  string
}
