package ports

import (
	"context"

	"contact-manager-api/internal/domain/address"
)

// AddressCache fronts the postal directory with a best-effort cache.
// A cache failure is never an error, only a miss.
type AddressCache interface {
	GetAddress(ctx context.Context, cep string) *address.Address
	SetAddress(ctx context.Context, cep string, addr *address.Address)
}
