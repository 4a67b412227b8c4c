package user

import (
	domain "contact-manager-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	return &domain.User{
		UUID:         model.UUID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Name:         model.Name,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBReset(model *PasswordReset) *domain.PasswordReset {
	return &domain.PasswordReset{
		UserUUID:  model.UserUUID,
		Token:     model.Token,
		ExpiresAt: model.ExpiresAt,
	}
}
