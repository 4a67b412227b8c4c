package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domain "contact-manager-api/internal/domain/user"
	"contact-manager-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("a user with this email already exists")

type Repository struct {
	db postgres.Pool
}

func NewRepository(db postgres.Pool) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByUUID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByUUID, uuid.String()).Scan(
		&u.ID,
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByEmail, email).Scan(
		&u.ID,
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchInternalID(ctx context.Context, uuid domain.UUID) (domain.ID, error) {
	var id uint64
	if err := r.db.QueryRow(ctx, SelectIdByUUID, uuid.String()).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("user not found by uuid %s: %w", uuid.String(), err)
		}
		return 0, err
	}

	return domain.ID(id), nil
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Email, req.PasswordHash, req.Name,
	).Scan(
		&u.ID,
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdatePassword(ctx context.Context, uuid domain.UUID, passwordHash string) error {
	_, err := r.db.Exec(ctx, UpdatePasswordByUUID, passwordHash, uuid.String())
	return err
}

func (r *Repository) DeleteUser(ctx context.Context, id domain.ID) error {
	_, err := r.db.Exec(ctx, DeleteUserByID, uint64(id))
	return err
}

func (r *Repository) CreatePasswordReset(ctx context.Context, reset domain.PasswordReset) error {
	_, err := r.db.Exec(ctx, InsertPasswordReset, reset.Token, reset.UserUUID.String(), reset.ExpiresAt)
	return err
}

func (r *Repository) FetchPasswordReset(ctx context.Context, token string) (*domain.PasswordReset, error) {
	pr := new(PasswordReset)
	err := r.db.QueryRow(ctx, SelectPasswordResetByToken, token).Scan(
		&pr.Token,
		&pr.UserUUID,
		&pr.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBReset(pr), nil
}

func (r *Repository) DeletePasswordReset(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, DeletePasswordResetByToken, token)
	return err
}
