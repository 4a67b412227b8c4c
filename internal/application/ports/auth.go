package ports

import (
	"context"

	"contact-manager-api/internal/domain/user"
)

type Auth interface {
	Register(ctx context.Context, name, email, password string) (*user.User, string, error)
	Login(ctx context.Context, email, password string) (*user.User, string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}
