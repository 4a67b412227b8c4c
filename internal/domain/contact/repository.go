package contact

import (
	"context"

	"contact-manager-api/internal/domain/user"
)

type Repository interface {
	FetchContacts(ctx context.Context, owner user.ID, q ListQuery) (Contacts, int, error)
	FetchContactByUUID(ctx context.Context, owner user.ID, uuid UUID) (*Contact, error)
	ExistsWithCPF(ctx context.Context, owner user.ID, cpf string) (bool, error)
	CreateContact(ctx context.Context, owner user.ID, req Contact) (*Contact, error)
	UpdateContact(ctx context.Context, owner user.ID, req Contact) (*Contact, error)
	DeleteContact(ctx context.Context, owner user.ID, uuid UUID) (*Contact, error)
}
