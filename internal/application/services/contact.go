package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"contact-manager-api/internal/application/ports"
	"contact-manager-api/internal/domain/contact"
	"contact-manager-api/internal/domain/user"
	"contact-manager-api/internal/infrastructure/mq"
	contactDTO "contact-manager-api/internal/interface/api/rest/dto/contact"
	"contact-manager-api/pkg/cpf"
)

type ContactService struct {
	userRepository    user.Repository
	contactRepository contact.Repository
	geocoder          ports.Geocoder
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewContactService(
	userRepository user.Repository,
	contactRepository contact.Repository,
	geocoder ports.Geocoder,
	rabbitMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) *ContactService {
	return &ContactService{
		userRepository:    userRepository,
		contactRepository: contactRepository,
		geocoder:          geocoder,
		mq:                rabbitMQ,
		mCounter:          mCounter,
	}
}

func (cs *ContactService) FindContacts(ctx context.Context, owner user.UUID, q contact.ListQuery) (contact.Contacts, int, error) {
	ownerID, err := cs.userRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return nil, 0, err
	}

	return cs.contactRepository.FetchContacts(ctx, ownerID, q)
}

func (cs *ContactService) FindContactByUUID(ctx context.Context, owner user.UUID, contactUUID contact.UUID) (*contact.Contact, error) {
	ownerID, err := cs.userRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return nil, err
	}

	return cs.contactRepository.FetchContactByUUID(ctx, ownerID, contactUUID)
}

func (cs *ContactService) CreateContact(ctx context.Context, owner user.UUID, req contact.Contact, hasCoordinates bool) (*contact.Contact, error) {
	ownerID, err := cs.userRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return nil, err
	}

	prepared, err := cs.PrepareForCreate(ctx, ownerID, req, hasCoordinates)
	if err != nil {
		return nil, err
	}

	created, err := cs.contactRepository.CreateContact(ctx, ownerID, prepared)
	if err != nil {
		return nil, err
	}

	cs.publishEvent(http.MethodPost, owner, created)
	cs.mCounter.WithLabelValues("contact_created_total").Inc()

	return created, nil
}

func (cs *ContactService) UpdateContact(ctx context.Context, owner user.UUID, contactUUID contact.UUID, upd contact.Update) (*contact.Contact, error) {
	ownerID, err := cs.userRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return nil, err
	}

	existing, err := cs.contactRepository.FetchContactByUUID(ctx, ownerID, contactUUID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	merged := cs.PrepareForUpdate(ctx, *existing, upd)

	updated, err := cs.contactRepository.UpdateContact(ctx, ownerID, merged)
	if err != nil {
		return nil, err
	}

	cs.publishEvent(http.MethodPut, owner, updated)
	cs.mCounter.WithLabelValues("contact_updated_total").Inc()

	return updated, nil
}

func (cs *ContactService) DeleteContact(ctx context.Context, owner user.UUID, contactUUID contact.UUID) error {
	ownerID, err := cs.userRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return err
	}

	deleted, err := cs.contactRepository.DeleteContact(ctx, ownerID, contactUUID)
	if err != nil {
		return err
	}
	if deleted == nil {
		return nil
	}

	cs.publishEvent(http.MethodDelete, owner, deleted)
	cs.mCounter.WithLabelValues("contact_deleted_total").Inc()

	return nil
}

// PrepareForCreate normalizes and validates a new contact and, when the
// client supplied no coordinates, resolves them through the geocoder.
// A geocoder miss at creation time is a hard error: a contact is never
// stored without coordinates.
func (cs *ContactService) PrepareForCreate(ctx context.Context, owner user.ID, req contact.Contact, hasCoordinates bool) (contact.Contact, error) {
	req.CPF = cpf.Unformat(req.CPF)
	req.State = strings.ToUpper(req.State)
	req.ZipCode = digitsOnly(req.ZipCode)

	if !cpf.Valid(req.CPF) {
		return req, &contact.ValidationError{Field: "cpf", Message: "invalid cpf"}
	}

	exists, err := cs.contactRepository.ExistsWithCPF(ctx, owner, req.CPF)
	if err != nil {
		return req, err
	}
	if exists {
		return req, &contact.ValidationError{Field: "cpf", Message: "a contact with this cpf already exists"}
	}

	if !hasCoordinates {
		loc := cs.geocoder.Resolve(ctx, req.Address)
		if loc == nil {
			return req, contact.ErrUnresolvableAddress
		}
		req.Latitude = loc.Latitude
		req.Longitude = loc.Longitude
	}

	return req, nil
}

// PrepareForUpdate merges a partial update into the stored contact.
// Client-supplied coordinates always win; otherwise the merged address
// is re-geocoded only when one of its postal fields actually changed,
// and a geocoder miss keeps the previous coordinates.
func (cs *ContactService) PrepareForUpdate(ctx context.Context, existing contact.Contact, upd contact.Update) contact.Contact {
	if upd.State != nil {
		s := strings.ToUpper(*upd.State)
		upd.State = &s
	}
	if upd.ZipCode != nil {
		z := digitsOnly(*upd.ZipCode)
		upd.ZipCode = &z
	}

	merged := existing
	applyString(&merged.Name, upd.Name)
	applyString(&merged.Phone, upd.Phone)
	applyString(&merged.Street, upd.Street)
	applyString(&merged.Number, upd.Number)
	applyString(&merged.Complement, upd.Complement)
	applyString(&merged.Neighborhood, upd.Neighborhood)
	applyString(&merged.City, upd.City)
	applyString(&merged.State, upd.State)
	applyString(&merged.ZipCode, upd.ZipCode)

	if upd.Latitude != nil && upd.Longitude != nil {
		merged.Latitude = *upd.Latitude
		merged.Longitude = *upd.Longitude
		return merged
	}

	if addressChanged(existing, merged) {
		if loc := cs.geocoder.Resolve(ctx, merged.Address); loc != nil {
			merged.Latitude = loc.Latitude
			merged.Longitude = loc.Longitude
		}
	}

	return merged
}

// addressChanged compares the six postal fields that feed geocoding;
// Complement is cosmetic and deliberately excluded.
func addressChanged(a, b contact.Contact) bool {
	return a.Street != b.Street ||
		a.Number != b.Number ||
		a.Neighborhood != b.Neighborhood ||
		a.City != b.City ||
		a.State != b.State ||
		a.ZipCode != b.ZipCode
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (cs *ContactService) publishEvent(method string, owner user.UUID, c *contact.Contact) {
	if c == nil {
		return
	}
	cs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		OwnerID: owner.String(),
		Payload: contactDTO.ToResponseContact(*c),
	}
}
