package ports

import (
	"context"

	"contact-manager-api/internal/domain/address"
)

// PostalDirectory wraps an external CEP directory. Implementations never
// return an error: every failure (bad input, transport, provider error
// flag) collapses to nil / an empty list.
type PostalDirectory interface {
	Lookup(ctx context.Context, cep string) *address.Address
	Search(ctx context.Context, uf, city, street string) address.Addresses
}
