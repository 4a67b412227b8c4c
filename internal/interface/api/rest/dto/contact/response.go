package contact

import (
	"time"

	"github.com/google/uuid"
)

type (
	Contact struct {
		UUID         uuid.UUID `json:"uuid"`
		Name         string    `json:"name"`
		CPF          string    `json:"cpf"`
		CPFFormatted string    `json:"cpf_formatted"`
		Phone        string    `json:"phone"`

		Street       string `json:"street"`
		Number       string `json:"number"`
		Complement   string `json:"complement"`
		Neighborhood string `json:"neighborhood"`
		City         string `json:"city"`
		State        string `json:"state"`
		ZipCode      string `json:"zip_code"`

		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`

		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	Contacts []Contact

	ResponseData struct {
		Data    Contacts `json:"data"`
		Total   int      `json:"total"`
		Page    int      `json:"page"`
		PerPage int      `json:"per_page"`
	}
)
