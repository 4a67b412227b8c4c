package auth

import (
	"time"

	"github.com/google/uuid"

	"contact-manager-api/internal/domain/user"
)

type (
	User struct {
		UUID      uuid.UUID `json:"uuid"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"created_at"`
	}

	TokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        User   `json:"user"`
	}
)

func ToResponseUser(uDomain user.User) User {
	return User{
		UUID:      uDomain.UUID,
		Email:     uDomain.Email,
		Name:      uDomain.Name,
		CreatedAt: uDomain.CreatedAt,
	}
}
