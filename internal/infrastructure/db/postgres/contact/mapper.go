package contact

import (
	domain "contact-manager-api/internal/domain/contact"
)

func fromDBModel(model *Contact) *domain.Contact {
	return &domain.Contact{
		UUID:  model.UUID,
		Name:  model.Name,
		CPF:   model.CPF,
		Phone: model.Phone,
		Address: domain.Address{
			Street:       model.Street,
			Number:       model.Number,
			Complement:   model.Complement,
			Neighborhood: model.Neighborhood,
			City:         model.City,
			State:        model.State,
			ZipCode:      model.ZipCode,
		},
		Latitude:  model.Latitude,
		Longitude: model.Longitude,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models *Contacts) domain.Contacts {
	cs := make(domain.Contacts, len(*models))
	for idx, c := range *models {
		cs[idx] = fromDBModel(c)
	}

	return cs
}
