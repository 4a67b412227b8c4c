package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"contact-manager-api/internal/domain/contact"
)

type addrFixture struct {
	Street, Number, Neighborhood, City, State, ZipCode string
}

func (f addrFixture) toDomain() contact.Address {
	return contact.Address{
		Street:       f.Street,
		Number:       f.Number,
		Neighborhood: f.Neighborhood,
		City:         f.City,
		State:        f.State,
		ZipCode:      f.ZipCode,
	}
}

func TestBuildFullAddress(t *testing.T) {
	tests := []struct {
		name string
		addr addrFixture
		want string
	}{
		{
			name: "all components",
			addr: addrFixture{"Rua Teste", "123", "Centro", "São Paulo", "SP", "01000000"},
			want: "Rua Teste, 123, Centro, São Paulo, SP, 01000000, Brasil",
		},
		{
			name: "street without number",
			addr: addrFixture{Street: "Rua Teste", City: "São Paulo"},
			want: "Rua Teste, São Paulo, Brasil",
		},
		{
			name: "number without street is skipped",
			addr: addrFixture{Number: "123", City: "São Paulo"},
			want: "São Paulo, Brasil",
		},
		{
			name: "empty address keeps only the country",
			addr: addrFixture{},
			want: "Brasil",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildFullAddress(tt.addr.toDomain()))
		})
	}
}

func TestClient_Resolve(t *testing.T) {
	okBody := `{
		"status": "OK",
		"results": [{
			"formatted_address": "Rua Teste, 123 - Centro, São Paulo - SP, 01000-000, Brazil",
			"geometry": {"location": {"lat": -23.550520, "lng": -46.633308}}
		}]
	}`

	t.Run("missing api key resolves to nil without a request", func(t *testing.T) {
		var hits atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer srv.Close()

		client := New(srv.URL, "", zap.NewNop())
		got := client.Resolve(context.Background(), addrFixture{Street: "Rua Teste", City: "São Paulo"}.toDomain())

		assert.Nil(t, got)
		assert.Zero(t, hits.Load())
	})

	t.Run("empty address resolves to nil without a request", func(t *testing.T) {
		var hits atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer srv.Close()

		client := New(srv.URL, "test-key", zap.NewNop())
		got := client.Resolve(context.Background(), addrFixture{}.toDomain())

		assert.Nil(t, got)
		assert.Zero(t, hits.Load())
	})

	t.Run("success returns first candidate with region bias", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "Rua Teste, 123, Centro, São Paulo, SP, 01000000, Brasil", q.Get("address"))
			assert.Equal(t, "test-key", q.Get("key"))
			assert.Equal(t, "br", q.Get("region"))
			w.Write([]byte(okBody))
		}))
		defer srv.Close()

		client := New(srv.URL, "test-key", zap.NewNop())
		got := client.Resolve(
			context.Background(),
			addrFixture{"Rua Teste", "123", "Centro", "São Paulo", "SP", "01000000"}.toDomain(),
		)

		require.NotNil(t, got)
		assert.InDelta(t, -23.550520, got.Latitude, 1e-9)
		assert.InDelta(t, -46.633308, got.Longitude, 1e-9)
		assert.Contains(t, got.FormattedAddress, "Rua Teste")
	})

	t.Run("provider status not OK resolves to nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
		}))
		defer srv.Close()

		client := New(srv.URL, "test-key", zap.NewNop())
		assert.Nil(t, client.Resolve(context.Background(), addrFixture{Street: "Rua Inexistente"}.toDomain()))
	})

	t.Run("transport failure resolves to nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		client := New(srv.URL, "test-key", zap.NewNop())
		assert.Nil(t, client.Resolve(context.Background(), addrFixture{Street: "Rua Teste"}.toDomain()))
	})

	t.Run("non-success status resolves to nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		client := New(srv.URL, "test-key", zap.NewNop())
		assert.Nil(t, client.Resolve(context.Background(), addrFixture{Street: "Rua Teste"}.toDomain()))
	})
}

func TestClient_ResolveString(t *testing.T) {
	t.Run("appends country suffix", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Avenida Paulista, 1000, São Paulo, Brasil", r.URL.Query().Get("address"))
			w.Write([]byte(`{"status": "OK", "results": [{"geometry": {"location": {"lat": -23.56, "lng": -46.65}}}]}`))
		}))
		defer srv.Close()

		client := New(srv.URL, "test-key", zap.NewNop())
		got := client.ResolveString(context.Background(), "Avenida Paulista, 1000, São Paulo")

		require.NotNil(t, got)
		assert.InDelta(t, -23.56, got.Latitude, 1e-9)
	})

	t.Run("blank input resolves to nil", func(t *testing.T) {
		client := New("http://unused", "test-key", zap.NewNop())
		assert.Nil(t, client.ResolveString(context.Background(), "   "))
	})
}
