package user

import (
	domain "account-manager-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	return &domain.User{
		ID:           model.ID,
		Email:        model.Email,
		Name:         model.Name,
		PasswordHash: model.PasswordHash,
		PasswordSalt: model.PasswordSalt,
		Role:         domain.Role(model.Role),
		IsActive:     model.IsActive,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models []*User) domain.Users {
	us := make(domain.Users, len(models))
	for idx, u := range models {
		us[idx] = fromDBModel(u)
	}

	return us
}
