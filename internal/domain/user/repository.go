package user

import (
	"context"
)

type Repository interface {
	FetchUserByUUID(ctx context.Context, uuid UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	FetchInternalID(ctx context.Context, uuid UUID) (ID, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdatePassword(ctx context.Context, uuid UUID, passwordHash string) error
	DeleteUser(ctx context.Context, id ID) error

	CreatePasswordReset(ctx context.Context, reset PasswordReset) error
	FetchPasswordReset(ctx context.Context, token string) (*PasswordReset, error)
	DeletePasswordReset(ctx context.Context, token string) error
}
