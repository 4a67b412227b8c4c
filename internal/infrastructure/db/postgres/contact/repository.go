package contact

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "contact-manager-api/internal/domain/contact"
	"contact-manager-api/internal/domain/user"
	"contact-manager-api/internal/infrastructure/db/postgres"
)

var ErrCPFAlreadyExists = errors.New("a contact with this cpf already exists")

type Repository struct {
	db postgres.Pool
}

func NewRepository(db postgres.Pool) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchContacts(ctx context.Context, owner user.ID, q domain.ListQuery) (domain.Contacts, int, error) {
	query := SelectContactsAsc
	if q.Sort == "desc" {
		query = SelectContactsDesc
	}
	offset := (q.Page - 1) * q.PerPage

	rows, err := r.db.Query(ctx, query, uint64(owner), q.Search, q.PerPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var cs Contacts
	for rows.Next() {
		c := new(Contact)

		if err = rows.Scan(
			&c.ID,
			&c.UUID,
			&c.UserID,

			&c.Name,
			&c.CPF,
			&c.Phone,

			&c.Street,
			&c.Number,
			&c.Complement,
			&c.Neighborhood,
			&c.City,
			&c.State,
			&c.ZipCode,

			&c.Latitude,
			&c.Longitude,

			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}

		cs = append(cs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err = r.db.QueryRow(ctx, CountContacts, uint64(owner), q.Search).Scan(&total); err != nil {
		return nil, 0, err
	}

	return fromDBModels(&cs), total, nil
}

func (r *Repository) FetchContactByUUID(ctx context.Context, owner user.ID, uuid domain.UUID) (*domain.Contact, error) {
	c := new(Contact)
	err := r.db.QueryRow(ctx, SelectContactByUUID, uint64(owner), uuid.String()).Scan(
		&c.ID,
		&c.UUID,
		&c.UserID,

		&c.Name,
		&c.CPF,
		&c.Phone,

		&c.Street,
		&c.Number,
		&c.Complement,
		&c.Neighborhood,
		&c.City,
		&c.State,
		&c.ZipCode,

		&c.Latitude,
		&c.Longitude,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) ExistsWithCPF(ctx context.Context, owner user.ID, cpf string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, SelectExistsWithCPF, uint64(owner), cpf).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) CreateContact(ctx context.Context, owner user.ID, req domain.Contact) (*domain.Contact, error) {
	c := new(Contact)

	err := r.db.QueryRow(
		ctx,
		InsertContact,
		uint64(owner),
		req.Name, req.CPF, req.Phone,
		req.Street, req.Number, req.Complement, req.Neighborhood, req.City, req.State, req.ZipCode,
		req.Latitude, req.Longitude,
	).Scan(
		&c.ID,
		&c.UUID,
		&c.UserID,

		&c.Name,
		&c.CPF,
		&c.Phone,

		&c.Street,
		&c.Number,
		&c.Complement,
		&c.Neighborhood,
		&c.City,
		&c.State,
		&c.ZipCode,

		&c.Latitude,
		&c.Longitude,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrCPFAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) UpdateContact(ctx context.Context, owner user.ID, req domain.Contact) (*domain.Contact, error) {
	c := new(Contact)

	err := r.db.QueryRow(
		ctx,
		UpdateContactByUUID,
		req.Name, req.Phone,
		req.Street, req.Number, req.Complement, req.Neighborhood, req.City, req.State, req.ZipCode,
		req.Latitude, req.Longitude,
		uint64(owner), req.UUID.String(),
	).Scan(
		&c.ID,
		&c.UUID,
		&c.UserID,

		&c.Name,
		&c.CPF,
		&c.Phone,

		&c.Street,
		&c.Number,
		&c.Complement,
		&c.Neighborhood,
		&c.City,
		&c.State,
		&c.ZipCode,

		&c.Latitude,
		&c.Longitude,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) DeleteContact(ctx context.Context, owner user.ID, uuid domain.UUID) (*domain.Contact, error) {
	c := new(Contact)
	err := r.db.QueryRow(ctx, DeleteContactByUUID, uint64(owner), uuid.String()).Scan(
		&c.ID,
		&c.UUID,
		&c.UserID,

		&c.Name,
		&c.CPF,
		&c.Phone,

		&c.Street,
		&c.Number,
		&c.Complement,
		&c.Neighborhood,
		&c.City,
		&c.State,
		&c.ZipCode,

		&c.Latitude,
		&c.Longitude,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), nil
}
