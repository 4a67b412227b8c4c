// Package viacep wraps the public ViaCEP postal directory.
//
// The client never surfaces an error to its caller: invalid input,
// transport failures, non-2xx statuses and the provider's own error
// flag all collapse to nil / an empty list, logged for diagnosis.
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"contact-manager-api/internal/domain/address"
)

const requestTimeout = 10 * time.Second

type Client struct {
	baseURL string
	httpc   *http.Client
	log     *zap.Logger
}

func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: requestTimeout},
		log:     logger,
	}
}

type viaCEPAddress struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	IBGE        string `json:"ibge"`
	Erro        bool   `json:"erro"`
}

// Lookup resolves a CEP to a single postal record. Returns nil when the
// CEP is malformed, the provider flags it as unknown, or the call fails.
func (c *Client) Lookup(ctx context.Context, cep string) *address.Address {
	cep = digitsOnly(cep)
	if len(cep) != 8 {
		c.log.Warn("invalid cep for lookup", zap.String("cep", cep))
		return nil
	}

	reqURL := fmt.Sprintf("%s/%s/json", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.log.Error("viacep request build failed", zap.String("cep", cep), zap.Error(err))
		return nil
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error("viacep request failed", zap.String("cep", cep), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("viacep lookup returned non-success status",
			zap.String("cep", cep),
			zap.Int("status", resp.StatusCode),
		)
		return nil
	}

	var data viaCEPAddress
	if err = json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.log.Error("viacep lookup returned unexpected body", zap.String("cep", cep), zap.Error(err))
		return nil
	}
	if data.Erro {
		c.log.Info("cep not found", zap.String("cep", cep))
		return nil
	}

	a := toAddress(data)
	return &a
}

// Search performs a reverse lookup by state, city and street fragment.
// Preconditions (uf exactly 2 chars, non-empty city, street fragment of
// at least 3 chars) short-circuit to an empty list without a request.
func (c *Client) Search(ctx context.Context, uf, city, street string) address.Addresses {
	if len(uf) != 2 || city == "" || len([]rune(street)) < 3 {
		c.log.Warn("invalid parameters for address search",
			zap.String("uf", uf),
			zap.String("city", city),
			zap.String("street", street),
		)
		return nil
	}

	reqURL := fmt.Sprintf("%s/%s/%s/%s/json",
		c.baseURL,
		url.PathEscape(uf),
		url.PathEscape(foldDiacritics(city)),
		url.PathEscape(foldDiacritics(street)),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.log.Error("viacep request build failed", zap.String("url", reqURL), zap.Error(err))
		return nil
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error("viacep search failed",
			zap.String("uf", uf),
			zap.String("city", city),
			zap.String("street", street),
			zap.Error(err),
		)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("viacep search returned non-success status",
			zap.String("uf", uf),
			zap.String("city", city),
			zap.String("street", street),
			zap.Int("status", resp.StatusCode),
		)
		return nil
	}

	// a non-list body (e.g. the provider's error object) is treated as
	// no results
	var data []viaCEPAddress
	if err = json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.log.Error("viacep search returned unexpected body", zap.Error(err))
		return nil
	}

	out := make(address.Addresses, 0, len(data))
	for _, item := range data {
		if item.Erro {
			continue
		}
		out = append(out, toAddress(item))
	}

	return out
}

func toAddress(v viaCEPAddress) address.Address {
	return address.Address{
		CEP:          v.CEP,
		Street:       v.Logradouro,
		Complement:   v.Complemento,
		Neighborhood: v.Bairro,
		City:         v.Localidade,
		State:        v.UF,
		IBGE:         v.IBGE,
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// foldDiacritics makes path segments like "São Paulo" safe for the
// provider's URL scheme by stripping combining marks.
func foldDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}
