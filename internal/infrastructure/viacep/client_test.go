package viacep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newServer(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int64, func()) {
	t.Helper()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))

	return New(srv.URL, zap.NewNop()), &hits, srv.Close
}

func TestClient_Lookup(t *testing.T) {
	tests := []struct {
		name     string
		cep      string
		handler  http.HandlerFunc
		wantNil  bool
		wantHits int64
		check    func(t *testing.T, c *Client)
	}{
		{
			name:     "short cep makes no request",
			cep:      "0100",
			handler:  func(w http.ResponseWriter, r *http.Request) {},
			wantNil:  true,
			wantHits: 0,
		},
		{
			name:     "non-digit garbage makes no request",
			cep:      "abc-def",
			handler:  func(w http.ResponseWriter, r *http.Request) {},
			wantNil:  true,
			wantHits: 0,
		},
		{
			name: "provider error flag maps to nil",
			cep:  "99999999",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"erro": true}`))
			},
			wantNil:  true,
			wantHits: 1,
		},
		{
			name: "non-success status maps to nil",
			cep:  "01000000",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantNil:  true,
			wantHits: 1,
		},
		{
			name: "malformed body maps to nil",
			cep:  "01000000",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
			wantNil:  true,
			wantHits: 1,
		},
		{
			name: "success maps provider fields",
			cep:  "01001-000",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/01001000/json", r.URL.Path)
				w.Write([]byte(`{
					"cep": "01001-000",
					"logradouro": "Praça da Sé",
					"complemento": "lado ímpar",
					"bairro": "Sé",
					"localidade": "São Paulo",
					"uf": "SP",
					"ibge": "3550308"
				}`))
			},
			wantNil:  false,
			wantHits: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			client, hits, closeFn := newServer(t, tt.handler)
			defer closeFn()

			got := client.Lookup(context.Background(), tt.cep)

			assert.Equal(t, tt.wantHits, hits.Load())
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, "Praça da Sé", got.Street)
			assert.Equal(t, "Sé", got.Neighborhood)
			assert.Equal(t, "São Paulo", got.City)
			assert.Equal(t, "SP", got.State)
			assert.Equal(t, "3550308", got.IBGE)
		})
	}
}

func TestClient_Search(t *testing.T) {
	t.Run("preconditions short-circuit without a request", func(t *testing.T) {
		client, hits, closeFn := newServer(t, func(w http.ResponseWriter, r *http.Request) {})
		defer closeFn()

		assert.Nil(t, client.Search(context.Background(), "SPX", "São Paulo", "Paulista"))
		assert.Nil(t, client.Search(context.Background(), "SP", "", "Paulista"))
		assert.Nil(t, client.Search(context.Background(), "SP", "São Paulo", "Pa"))
		assert.Zero(t, hits.Load())
	})

	t.Run("folds diacritics in the request path", func(t *testing.T) {
		client, hits, closeFn := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/SP/Sao Paulo/Praca/json", r.URL.Path)
			w.Write([]byte(`[{"cep": "01001-000", "logradouro": "Praça da Sé", "localidade": "São Paulo", "uf": "SP"}]`))
		})
		defer closeFn()

		got := client.Search(context.Background(), "SP", "São Paulo", "Praça")
		require.Len(t, got, 1)
		assert.Equal(t, "01001-000", got[0].CEP)
		assert.Equal(t, int64(1), hits.Load())
	})

	t.Run("non-list body maps to empty", func(t *testing.T) {
		client, _, closeFn := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"erro": true}`))
		})
		defer closeFn()

		assert.Empty(t, client.Search(context.Background(), "SP", "São Paulo", "Paulista"))
	})

	t.Run("non-success status maps to empty", func(t *testing.T) {
		client, _, closeFn := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		defer closeFn()

		assert.Empty(t, client.Search(context.Background(), "SP", "São Paulo", "Paulista"))
	})
}
