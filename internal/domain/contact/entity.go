package contact

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID

	// Address holds the postal components of a contact. ZipCode is stored
	// unformatted (8 digits), State as an uppercase two-letter UF code.
	Address struct {
		Street       string
		Number       string
		Complement   string
		Neighborhood string
		City         string
		State        string
		ZipCode      string
	}

	// Location is a geocoding result. FormattedAddress is informational
	// only and never persisted.
	Location struct {
		Latitude         float64
		Longitude        float64
		FormattedAddress string
	}

	Contact struct {
		UUID  UUID
		Name  string
		CPF   string
		Phone string
		Address
		Latitude  float64
		Longitude float64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Contacts []*Contact

	// Update is a partial contact mutation; nil fields keep the stored
	// value. The CPF is immutable after creation and has no field here.
	Update struct {
		Name         *string
		Phone        *string
		Street       *string
		Number       *string
		Complement   *string
		Neighborhood *string
		City         *string
		State        *string
		ZipCode      *string
		Latitude     *float64
		Longitude    *float64
	}

	// ListQuery carries pagination, filter and ordering for contact lists.
	ListQuery struct {
		Search  string
		Sort    string // "asc" or "desc", by name
		Page    int
		PerPage int
	}
)
