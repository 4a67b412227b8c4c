package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID
	User struct {
		UUID         UUID
		Email        string
		PasswordHash string
		Name         string

		CreatedAt time.Time
		UpdatedAt time.Time
	}

	// PasswordReset is a one-time token emailed to the user.
	PasswordReset struct {
		UserUUID  UUID
		Token     string
		ExpiresAt time.Time
	}
)
