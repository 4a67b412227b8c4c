package ports

import (
	"context"

	"contact-manager-api/internal/domain/user"
)

type UserService interface {
	FindUserByUUID(ctx context.Context, uuid user.UUID) (*user.User, error)
	DeleteAccount(ctx context.Context, uuid user.UUID) error
}
