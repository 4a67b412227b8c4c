package address

import (
	domain "contact-manager-api/internal/domain/address"
)

type (
	Address struct {
		CEP          string `json:"cep"`
		Street       string `json:"street"`
		Complement   string `json:"complement"`
		Neighborhood string `json:"neighborhood"`
		City         string `json:"city"`
		State        string `json:"state"`
		IBGE         string `json:"ibge,omitempty"`
	}
	Addresses []Address

	LookupResponse struct {
		Address Address `json:"address"`
	}
	SearchResponse struct {
		Addresses Addresses `json:"addresses"`
	}
)

func ToResponseAddress(aDomain domain.Address) Address {
	return Address{
		CEP:          aDomain.CEP,
		Street:       aDomain.Street,
		Complement:   aDomain.Complement,
		Neighborhood: aDomain.Neighborhood,
		City:         aDomain.City,
		State:        aDomain.State,
		IBGE:         aDomain.IBGE,
	}
}

func ToResponseAddresses(asDomain domain.Addresses) Addresses {
	as := make(Addresses, len(asDomain))
	for idx, a := range asDomain {
		as[idx] = ToResponseAddress(a)
	}

	return as
}
