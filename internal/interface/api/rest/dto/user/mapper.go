package user

import (
	"account-manager-api/internal/domain/query"
	"account-manager-api/internal/domain/user"
)

func ToResponseUser(pub user.Public) User {
	return User{
		ID:        pub.ID,
		Email:     pub.Email,
		Name:      pub.Name,
		Role:      string(pub.Role),
		IsActive:  pub.IsActive,
		CreatedAt: pub.CreatedAt,
		UpdatedAt: pub.UpdatedAt,
	}
}

func ToResponseUsers(pubs []user.Public) Users {
	us := make(Users, len(pubs))
	for idx, pub := range pubs {
		us[idx] = ToResponseUser(pub)
	}

	return us
}

func ToPageResponse(res *query.Result[user.Public]) PageResponse {
	return PageResponse{
		Data:       ToResponseUsers(res.Items),
		Total:      res.Total,
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalPages: res.TotalPages(),
	}
}
