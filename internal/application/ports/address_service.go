package ports

import (
	"context"

	"contact-manager-api/internal/domain/address"
)

type AddressService interface {
	LookupCEP(ctx context.Context, cep string) *address.Address
	SearchAddresses(ctx context.Context, uf, city, street string) address.Addresses
}
