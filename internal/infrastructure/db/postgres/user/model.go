package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID           uuid.UUID `db:"id"`
		Email        string    `db:"email"`
		Name         string    `db:"name"`
		PasswordHash string    `db:"password_hash"`
		PasswordSalt string    `db:"password_salt"`
		Role         string    `db:"role"`
		IsActive     bool      `db:"is_active"`

		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	Users []*User
)
