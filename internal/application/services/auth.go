package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"contact-manager-api/internal/application/ports"
	domain "contact-manager-api/internal/domain/user"
	"contact-manager-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
	ErrInvalidResetToken     = errors.New("invalid or expired reset token")
)

const (
	accessTokenTTL = time.Hour
	resetTokenTTL  = time.Hour
)

type AuthService struct {
	userRepository domain.Repository
	jwtService     *jwt.Service
	mailer         ports.Mailer
}

func NewAuthService(
	userRepository domain.Repository,
	jwtService *jwt.Service,
	mailer ports.Mailer,
) ports.Auth {
	return &AuthService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
	}
}

func (as *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u, err := as.userRepository.CreateUser(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := as.jwtService.GenerateJWT(u.UUID.String(), u.Email, accessTokenTTL)
	if err != nil {
		return nil, "", ErrFailedToGenerateToken
	}

	return u, token, nil
}

func (as *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := as.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(u.UUID.String(), u.Email, accessTokenTTL)
	if err != nil {
		return nil, "", ErrFailedToGenerateToken
	}

	return u, token, nil
}

// ForgotPassword is silent about unknown emails so the endpoint cannot
// be used for account enumeration.
func (as *AuthService) ForgotPassword(ctx context.Context, email string) error {
	u, err := as.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil {
		return nil
	}

	token := uuid.NewString()
	if err = as.userRepository.CreatePasswordReset(ctx, domain.PasswordReset{
		UserUUID:  u.UUID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}); err != nil {
		return err
	}

	return as.mailer.SendPasswordReset(ctx, u.Email, u.Name, token)
}

func (as *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	pr, err := as.userRepository.FetchPasswordReset(ctx, token)
	if err != nil {
		return err
	}
	if pr == nil {
		return ErrInvalidResetToken
	}
	if time.Now().After(pr.ExpiresAt) {
		_ = as.userRepository.DeletePasswordReset(ctx, token)
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err = as.userRepository.UpdatePassword(ctx, pr.UserUUID, string(hash)); err != nil {
		return err
	}

	return as.userRepository.DeletePasswordReset(ctx, token)
}
