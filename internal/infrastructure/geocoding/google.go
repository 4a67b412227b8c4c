// Package geocoding wraps the Google Maps Geocoding API.
//
// Like the postal directory client, it reports failure only through a
// nil result: missing credential, transport errors, non-OK provider
// status and empty result sets never reach the caller as errors.
package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"contact-manager-api/internal/domain/contact"
)

const (
	requestTimeout = 10 * time.Second

	// results are biased toward Brazil; every query carries the country
	// suffix the way the provider expects it
	regionBias    = "br"
	countrySuffix = "Brasil"
)

type Client struct {
	geocodingURL string
	apiKey       string
	httpc        *http.Client
	log          *zap.Logger
}

func New(geocodingURL, apiKey string, logger *zap.Logger) *Client {
	return &Client{
		geocodingURL: geocodingURL,
		apiKey:       apiKey,
		httpc:        &http.Client{Timeout: requestTimeout},
		log:          logger,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve converts structured address components into coordinates.
// Returns nil when no API key is configured, the built address line is
// empty, or the provider cannot resolve the address.
func (c *Client) Resolve(ctx context.Context, addr contact.Address) *contact.Location {
	full := buildFullAddress(addr)
	if full == countrySuffix {
		c.log.Warn("empty address given for geocoding")
		return nil
	}

	return c.geocode(ctx, full)
}

// ResolveString geocodes a pre-built single-line address. The country
// suffix is still appended.
func (c *Client) ResolveString(ctx context.Context, addr string) *contact.Location {
	if strings.TrimSpace(addr) == "" {
		return nil
	}

	return c.geocode(ctx, addr+", "+countrySuffix)
}

func (c *Client) geocode(ctx context.Context, fullAddress string) *contact.Location {
	if c.apiKey == "" {
		c.log.Warn("geocoding api key not configured")
		return nil
	}

	params := url.Values{}
	params.Set("address", fullAddress)
	params.Set("key", c.apiKey)
	params.Set("region", regionBias)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.geocodingURL+"?"+params.Encode(), nil)
	if err != nil {
		c.log.Error("geocoding request build failed", zap.String("address", fullAddress), zap.Error(err))
		return nil
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error("geocoding request failed", zap.String("address", fullAddress), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("geocoding returned non-success status",
			zap.String("address", fullAddress),
			zap.Int("status", resp.StatusCode),
		)
		return nil
	}

	var data geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.log.Error("geocoding returned unexpected body", zap.String("address", fullAddress), zap.Error(err))
		return nil
	}

	if data.Status != "OK" {
		c.log.Info("geocoding did not resolve the address",
			zap.String("address", fullAddress),
			zap.String("provider_status", data.Status),
		)
		return nil
	}
	if len(data.Results) == 0 {
		return nil
	}

	// the provider may return several candidates; the first is taken
	// without a precision check
	first := data.Results[0]

	return &contact.Location{
		Latitude:         first.Geometry.Location.Lat,
		Longitude:        first.Geometry.Location.Lng,
		FormattedAddress: first.FormattedAddress,
	}
}

func buildFullAddress(addr contact.Address) string {
	var parts []string

	if addr.Street != "" {
		street := addr.Street
		if addr.Number != "" {
			street += ", " + addr.Number
		}
		parts = append(parts, street)
	}
	if addr.Neighborhood != "" {
		parts = append(parts, addr.Neighborhood)
	}
	if addr.City != "" {
		parts = append(parts, addr.City)
	}
	if addr.State != "" {
		parts = append(parts, addr.State)
	}
	if addr.ZipCode != "" {
		parts = append(parts, addr.ZipCode)
	}
	parts = append(parts, countrySuffix)

	return strings.Join(parts, ", ")
}
