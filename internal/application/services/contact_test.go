package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-manager-api/internal/domain/contact"
	"contact-manager-api/internal/domain/user"
	"contact-manager-api/internal/infrastructure/mq"
)

type FakeUserRepository struct {
	FetchUserByUUIDFunc     func(ctx context.Context, uuid user.UUID) (*user.User, error)
	FetchUserByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	FetchInternalIDFunc     func(ctx context.Context, uuid user.UUID) (user.ID, error)
	CreateUserFunc          func(ctx context.Context, req user.User) (*user.User, error)
	UpdatePasswordFunc      func(ctx context.Context, uuid user.UUID, passwordHash string) error
	DeleteUserFunc          func(ctx context.Context, id user.ID) error
	CreatePasswordResetFunc func(ctx context.Context, reset user.PasswordReset) error
	FetchPasswordResetFunc  func(ctx context.Context, token string) (*user.PasswordReset, error)
	DeletePasswordResetFunc func(ctx context.Context, token string) error
}

func (f *FakeUserRepository) FetchUserByUUID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	if f.FetchUserByUUIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByUUIDFunc(ctx, uuid)
}
func (f *FakeUserRepository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.FetchUserByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByEmailFunc(ctx, email)
}
func (f *FakeUserRepository) FetchInternalID(ctx context.Context, uuid user.UUID) (user.ID, error) {
	if f.FetchInternalIDFunc == nil {
		return 1, nil
	}
	return f.FetchInternalIDFunc(ctx, uuid)
}
func (f *FakeUserRepository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, req)
}
func (f *FakeUserRepository) UpdatePassword(ctx context.Context, uuid user.UUID, passwordHash string) error {
	if f.UpdatePasswordFunc == nil {
		return errors.New("not used")
	}
	return f.UpdatePasswordFunc(ctx, uuid, passwordHash)
}
func (f *FakeUserRepository) DeleteUser(ctx context.Context, id user.ID) error {
	if f.DeleteUserFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteUserFunc(ctx, id)
}
func (f *FakeUserRepository) CreatePasswordReset(ctx context.Context, reset user.PasswordReset) error {
	if f.CreatePasswordResetFunc == nil {
		return errors.New("not used")
	}
	return f.CreatePasswordResetFunc(ctx, reset)
}
func (f *FakeUserRepository) FetchPasswordReset(ctx context.Context, token string) (*user.PasswordReset, error) {
	if f.FetchPasswordResetFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchPasswordResetFunc(ctx, token)
}
func (f *FakeUserRepository) DeletePasswordReset(ctx context.Context, token string) error {
	if f.DeletePasswordResetFunc == nil {
		return errors.New("not used")
	}
	return f.DeletePasswordResetFunc(ctx, token)
}

type FakeContactRepository struct {
	FetchContactsFunc      func(ctx context.Context, owner user.ID, q contact.ListQuery) (contact.Contacts, int, error)
	FetchContactByUUIDFunc func(ctx context.Context, owner user.ID, uuid contact.UUID) (*contact.Contact, error)
	ExistsWithCPFFunc      func(ctx context.Context, owner user.ID, cpf string) (bool, error)
	CreateContactFunc      func(ctx context.Context, owner user.ID, req contact.Contact) (*contact.Contact, error)
	UpdateContactFunc      func(ctx context.Context, owner user.ID, req contact.Contact) (*contact.Contact, error)
	DeleteContactFunc      func(ctx context.Context, owner user.ID, uuid contact.UUID) (*contact.Contact, error)
}

func (f *FakeContactRepository) FetchContacts(ctx context.Context, owner user.ID, q contact.ListQuery) (contact.Contacts, int, error) {
	if f.FetchContactsFunc == nil {
		return nil, 0, errors.New("not used")
	}
	return f.FetchContactsFunc(ctx, owner, q)
}
func (f *FakeContactRepository) FetchContactByUUID(ctx context.Context, owner user.ID, uuid contact.UUID) (*contact.Contact, error) {
	if f.FetchContactByUUIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchContactByUUIDFunc(ctx, owner, uuid)
}
func (f *FakeContactRepository) ExistsWithCPF(ctx context.Context, owner user.ID, cpf string) (bool, error) {
	if f.ExistsWithCPFFunc == nil {
		return false, nil
	}
	return f.ExistsWithCPFFunc(ctx, owner, cpf)
}
func (f *FakeContactRepository) CreateContact(ctx context.Context, owner user.ID, req contact.Contact) (*contact.Contact, error) {
	if f.CreateContactFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateContactFunc(ctx, owner, req)
}
func (f *FakeContactRepository) UpdateContact(ctx context.Context, owner user.ID, req contact.Contact) (*contact.Contact, error) {
	if f.UpdateContactFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateContactFunc(ctx, owner, req)
}
func (f *FakeContactRepository) DeleteContact(ctx context.Context, owner user.ID, uuid contact.UUID) (*contact.Contact, error) {
	if f.DeleteContactFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteContactFunc(ctx, owner, uuid)
}

type FakeGeocoder struct {
	ResolveFunc func(ctx context.Context, addr contact.Address) *contact.Location
	Calls       int
}

func (f *FakeGeocoder) Resolve(ctx context.Context, addr contact.Address) *contact.Location {
	f.Calls++
	if f.ResolveFunc == nil {
		return nil
	}
	return f.ResolveFunc(ctx, addr)
}
func (f *FakeGeocoder) ResolveString(ctx context.Context, addr string) *contact.Location {
	return nil
}

type FakeRabbitMQ struct {
	in chan mq.Event
}

func NewFakeRabbitMQ() *FakeRabbitMQ {
	return &FakeRabbitMQ{in: make(chan mq.Event, 16)}
}
func (f *FakeRabbitMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *FakeRabbitMQ) Init() error                                   { return nil }
func (f *FakeRabbitMQ) PublisherWorker(ctx context.Context)           {}
func (f *FakeRabbitMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *FakeRabbitMQ) GetConn() *amqp091.Connection                  { return nil }

func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"})
}

func newTestContactService(repo *FakeContactRepository, geo *FakeGeocoder) (*ContactService, *FakeRabbitMQ) {
	rmq := NewFakeRabbitMQ()
	cs := NewContactService(&FakeUserRepository{}, repo, geo, rmq, testCounter())
	return cs, rmq
}

func validCreateReq() contact.Contact {
	return contact.Contact{
		Name:  "Maria Silva",
		CPF:   "111.444.777-35",
		Phone: "+55 11 91234-5678",
		Address: contact.Address{
			Street:       "Avenida Paulista",
			Number:       "1578",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "sp",
			ZipCode:      "01310-200",
		},
	}
}

func TestCreateContact_NormalizesAndGeocodes(t *testing.T) {
	geo := &FakeGeocoder{ResolveFunc: func(ctx context.Context, addr contact.Address) *contact.Location {
		assert.Equal(t, "SP", addr.State)
		assert.Equal(t, "01310200", addr.ZipCode)
		return &contact.Location{Latitude: -23.550520, Longitude: -46.633308}
	}}
	repo := &FakeContactRepository{
		CreateContactFunc: func(ctx context.Context, owner user.ID, req contact.Contact) (*contact.Contact, error) {
			req.UUID = uuid.New()
			return &req, nil
		},
	}
	cs, rmq := newTestContactService(repo, geo)

	created, err := cs.CreateContact(context.Background(), uuid.New(), validCreateReq(), false)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "11144477735", created.CPF)
	assert.Equal(t, "SP", created.State)
	assert.Equal(t, "01310200", created.ZipCode)
	assert.InDelta(t, -23.550520, created.Latitude, 1e-9)
	assert.Equal(t, 1, geo.Calls)

	e := <-rmq.GetInputChan()
	assert.Equal(t, "POST", e.Method)
}

func TestCreateContact_SuppliedCoordinatesSkipGeocoder(t *testing.T) {
	geo := &FakeGeocoder{}
	repo := &FakeContactRepository{
		CreateContactFunc: func(ctx context.Context, owner user.ID, req contact.Contact) (*contact.Contact, error) {
			return &req, nil
		},
	}
	cs, _ := newTestContactService(repo, geo)

	req := validCreateReq()
	req.Latitude = -23.5
	req.Longitude = -46.6

	created, err := cs.CreateContact(context.Background(), uuid.New(), req, true)
	require.NoError(t, err)

	assert.Equal(t, 0, geo.Calls)
	assert.InDelta(t, -23.5, created.Latitude, 1e-9)
}

func TestCreateContact_InvalidCPF(t *testing.T) {
	repoCalled := false
	repo := &FakeContactRepository{
		ExistsWithCPFFunc: func(ctx context.Context, owner user.ID, cpf string) (bool, error) {
			repoCalled = true
			return false, nil
		},
	}
	cs, _ := newTestContactService(repo, &FakeGeocoder{})

	req := validCreateReq()
	req.CPF = "111.111.111-11"

	_, err := cs.CreateContact(context.Background(), uuid.New(), req, false)

	var vErr *contact.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "cpf", vErr.Field)
	assert.False(t, repoCalled, "repeated-digit cpf must be rejected before any repository call")
}

func TestCreateContact_DuplicateCPF(t *testing.T) {
	repo := &FakeContactRepository{
		ExistsWithCPFFunc: func(ctx context.Context, owner user.ID, cpf string) (bool, error) {
			assert.Equal(t, "11144477735", cpf)
			return true, nil
		},
	}
	cs, _ := newTestContactService(repo, &FakeGeocoder{})

	_, err := cs.CreateContact(context.Background(), uuid.New(), validCreateReq(), false)

	var vErr *contact.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "cpf", vErr.Field)
}

func TestCreateContact_UnresolvableAddress(t *testing.T) {
	persisted := false
	repo := &FakeContactRepository{
		CreateContactFunc: func(ctx context.Context, owner user.ID, req contact.Contact) (*contact.Contact, error) {
			persisted = true
			return &req, nil
		},
	}
	cs, _ := newTestContactService(repo, &FakeGeocoder{})

	_, err := cs.CreateContact(context.Background(), uuid.New(), validCreateReq(), false)

	require.ErrorIs(t, err, contact.ErrUnresolvableAddress)
	assert.False(t, persisted)
}

func existingContact() *contact.Contact {
	return &contact.Contact{
		UUID:  uuid.New(),
		Name:  "Maria Silva",
		CPF:   "11144477735",
		Phone: "+55 11 91234-5678",
		Address: contact.Address{
			Street:       "Avenida Paulista",
			Number:       "1578",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "SP",
			ZipCode:      "01310200",
		},
		Latitude:  -23.550520,
		Longitude: -46.633308,
	}
}

func TestUpdateContact_ComplementOnlySkipsGeocoder(t *testing.T) {
	existing := existingContact()
	geo := &FakeGeocoder{}
	repo := &FakeContactRepository{
		FetchContactByUUIDFunc: func(ctx context.Context, owner user.ID, id contact.UUID) (*contact.Contact, error) {
			return existing, nil
		},
		UpdateContactFunc: func(ctx context.Context, owner user.ID, req contact.Contact) (*contact.Contact, error) {
			return &req, nil
		},
	}
	cs, _ := newTestContactService(repo, geo)

	complement := "Apto 101"
	updated, err := cs.UpdateContact(context.Background(), uuid.New(), existing.UUID, contact.Update{Complement: &complement})
	require.NoError(t, err)

	assert.Equal(t, 0, geo.Calls)
	assert.Equal(t, "Apto 101", updated.Complement)
	assert.InDelta(t, existing.Latitude, updated.Latitude, 1e-9)
}

func TestUpdateContact_StreetChangeRegeocorded(t *testing.T) {
	existing := existingContact()
	geo := &FakeGeocoder{ResolveFunc: func(ctx context.Context, addr contact.Address) *contact.Location {
		assert.Equal(t, "Rua Augusta", addr.Street)
		return &contact.Location{Latitude: -23.553, Longitude: -46.655}
	}}
	repo := &FakeContactRepository{
		FetchContactByUUIDFunc: func(ctx context.Context, owner user.ID, id contact.UUID) (*contact.Contact, error) {
			return existing, nil
		},
		UpdateContactFunc: func(ctx context.Context, owner user.ID, req contact.Contact) (*contact.Contact, error) {
			return &req, nil
		},
	}
	cs, _ := newTestContactService(repo, geo)

	street := "Rua Augusta"
	updated, err := cs.UpdateContact(context.Background(), uuid.New(), existing.UUID, contact.Update{Street: &street})
	require.NoError(t, err)

	assert.Equal(t, 1, geo.Calls)
	assert.InDelta(t, -23.553, updated.Latitude, 1e-9)
}

func TestUpdateContact_GeocoderMissKeepsOldCoordinates(t *testing.T) {
	existing := existingContact()
	geo := &FakeGeocoder{} // resolves to nil
	repo := &FakeContactRepository{
		FetchContactByUUIDFunc: func(ctx context.Context, owner user.ID, id contact.UUID) (*contact.Contact, error) {
			return existing, nil
		},
		UpdateContactFunc: func(ctx context.Context, owner user.ID, req contact.Contact) (*contact.Contact, error) {
			return &req, nil
		},
	}
	cs, _ := newTestContactService(repo, geo)

	street := "Rua Inexistente"
	updated, err := cs.UpdateContact(context.Background(), uuid.New(), existing.UUID, contact.Update{Street: &street})
	require.NoError(t, err)

	assert.Equal(t, 1, geo.Calls)
	assert.InDelta(t, existing.Latitude, updated.Latitude, 1e-9)
	assert.InDelta(t, existing.Longitude, updated.Longitude, 1e-9)
}

func TestUpdateContact_SuppliedCoordinatesWin(t *testing.T) {
	existing := existingContact()
	geo := &FakeGeocoder{}
	repo := &FakeContactRepository{
		FetchContactByUUIDFunc: func(ctx context.Context, owner user.ID, id contact.UUID) (*contact.Contact, error) {
			return existing, nil
		},
		UpdateContactFunc: func(ctx context.Context, owner user.ID, req contact.Contact) (*contact.Contact, error) {
			return &req, nil
		},
	}
	cs, _ := newTestContactService(repo, geo)

	street := "Rua Augusta"
	lat, lng := -23.56, -46.66
	updated, err := cs.UpdateContact(context.Background(), uuid.New(), existing.UUID, contact.Update{
		Street:    &street,
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, geo.Calls, "client coordinates take precedence over geocoding")
	assert.InDelta(t, -23.56, updated.Latitude, 1e-9)
}

func TestUpdateContact_NotFound(t *testing.T) {
	repo := &FakeContactRepository{
		FetchContactByUUIDFunc: func(ctx context.Context, owner user.ID, id contact.UUID) (*contact.Contact, error) {
			return nil, nil
		},
	}
	cs, _ := newTestContactService(repo, &FakeGeocoder{})

	name := "New Name"
	updated, err := cs.UpdateContact(context.Background(), uuid.New(), uuid.New(), contact.Update{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUpdateContact_StateNormalizedBeforeDiff(t *testing.T) {
	existing := existingContact()
	geo := &FakeGeocoder{}
	repo := &FakeContactRepository{
		FetchContactByUUIDFunc: func(ctx context.Context, owner user.ID, id contact.UUID) (*contact.Contact, error) {
			return existing, nil
		},
		UpdateContactFunc: func(ctx context.Context, owner user.ID, req contact.Contact) (*contact.Contact, error) {
			return &req, nil
		},
	}
	cs, _ := newTestContactService(repo, geo)

	state := "sp" // same UF as stored, only cased differently
	updated, err := cs.UpdateContact(context.Background(), uuid.New(), existing.UUID, contact.Update{State: &state})
	require.NoError(t, err)

	assert.Equal(t, 0, geo.Calls)
	assert.Equal(t, "SP", updated.State)
}

func TestDeleteContact_PublishesEvent(t *testing.T) {
	existing := existingContact()
	repo := &FakeContactRepository{
		DeleteContactFunc: func(ctx context.Context, owner user.ID, id contact.UUID) (*contact.Contact, error) {
			return existing, nil
		},
	}
	cs, rmq := newTestContactService(repo, &FakeGeocoder{})

	require.NoError(t, cs.DeleteContact(context.Background(), uuid.New(), existing.UUID))

	e := <-rmq.GetInputChan()
	assert.Equal(t, "DELETE", e.Method)
	assert.Equal(t, existing.UUID, e.Payload.UUID)
}

func TestDeleteContact_MissingRowIsSilent(t *testing.T) {
	repo := &FakeContactRepository{
		DeleteContactFunc: func(ctx context.Context, owner user.ID, id contact.UUID) (*contact.Contact, error) {
			return nil, nil
		},
	}
	cs, rmq := newTestContactService(repo, &FakeGeocoder{})

	require.NoError(t, cs.DeleteContact(context.Background(), uuid.New(), uuid.New()))
	assert.Len(t, rmq.GetInputChan(), 0)
}
