package contact

import (
	domain "contact-manager-api/internal/domain/contact"
	"contact-manager-api/pkg/cpf"
)

func ToResponseContact(cDomain domain.Contact) Contact {
	return Contact{
		UUID:         cDomain.UUID,
		Name:         cDomain.Name,
		CPF:          cDomain.CPF,
		CPFFormatted: cpf.Format(cDomain.CPF),
		Phone:        cDomain.Phone,

		Street:       cDomain.Street,
		Number:       cDomain.Number,
		Complement:   cDomain.Complement,
		Neighborhood: cDomain.Neighborhood,
		City:         cDomain.City,
		State:        cDomain.State,
		ZipCode:      cDomain.ZipCode,

		Latitude:  cDomain.Latitude,
		Longitude: cDomain.Longitude,

		CreatedAt: cDomain.CreatedAt,
		UpdatedAt: cDomain.UpdatedAt,
	}
}

func ToResponseContacts(csDomain domain.Contacts) Contacts {
	cs := make(Contacts, len(csDomain))
	for idx, c := range csDomain {
		cs[idx] = ToResponseContact(*c)
	}

	return cs
}

func ToDomainContact(req Request) domain.Contact {
	c := domain.Contact{
		Name:  req.Name,
		CPF:   req.CPF,
		Phone: req.Phone,
		Address: domain.Address{
			Street:       req.Street,
			Number:       req.Number,
			Complement:   req.Complement,
			Neighborhood: req.Neighborhood,
			City:         req.City,
			State:        req.State,
			ZipCode:      req.ZipCode,
		},
	}
	if req.Latitude != nil {
		c.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		c.Longitude = *req.Longitude
	}

	return c
}

// HasCoordinates reports whether the create payload carries both
// coordinates explicitly.
func (r Request) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

func ToDomainUpdate(req UpdateRequest) domain.Update {
	return domain.Update{
		Name:         req.Name,
		Phone:        req.Phone,
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}
}
