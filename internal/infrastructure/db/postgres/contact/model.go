package contact

import (
	"time"

	"github.com/google/uuid"
)

type (
	Contact struct {
		ID     uint64
		UUID   uuid.UUID
		UserID uint64

		Name  string
		CPF   string
		Phone string

		Street       string
		Number       string
		Complement   string
		Neighborhood string
		City         string
		State        string
		ZipCode      string

		Latitude  float64
		Longitude float64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Contacts []*Contact
)
