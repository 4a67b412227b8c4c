package contact

import "errors"

// ValidationError marks malformed or conflicting client input,
// scoped to a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

// ErrUnresolvableAddress is returned when a contact is created without
// coordinates and the geocoding provider cannot resolve its address.
// It is a client-facing condition, distinct from field validation.
var ErrUnresolvableAddress = errors.New("could not resolve the address to geographic coordinates")
