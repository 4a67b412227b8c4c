package ports

import (
	"context"

	"contact-manager-api/internal/domain/contact"
	"contact-manager-api/internal/domain/user"
)

type ContactService interface {
	FindContacts(ctx context.Context, owner user.UUID, q contact.ListQuery) (contact.Contacts, int, error)
	FindContactByUUID(ctx context.Context, owner user.UUID, contactUUID contact.UUID) (*contact.Contact, error)
	CreateContact(ctx context.Context, owner user.UUID, req contact.Contact, hasCoordinates bool) (*contact.Contact, error)
	UpdateContact(ctx context.Context, owner user.UUID, contactUUID contact.UUID, upd contact.Update) (*contact.Contact, error)
	DeleteContact(ctx context.Context, owner user.UUID, contactUUID contact.UUID) error
}
