package ports

import (
	"context"

	"contact-manager-api/internal/domain/contact"
)

// Geocoder resolves an address into geographic coordinates.
// Implementations never return an error: a missing credential, transport
// failure or non-OK provider status all collapse to nil.
type Geocoder interface {
	Resolve(ctx context.Context, addr contact.Address) *contact.Location
	ResolveString(ctx context.Context, addr string) *contact.Location
}
