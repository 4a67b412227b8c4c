package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"contact-manager-api/internal/application/ports"
	"contact-manager-api/internal/domain/address"
)

// AddressService fronts the postal directory with a cache. CEP lookups
// are immutable data, so cached entries are served without revalidation.
type AddressService struct {
	postal   ports.PostalDirectory
	cache    ports.AddressCache
	mCounter *prometheus.CounterVec
}

func NewAddressService(
	postal ports.PostalDirectory,
	cache ports.AddressCache,
	mCounter *prometheus.CounterVec,
) ports.AddressService {
	return &AddressService{
		postal:   postal,
		cache:    cache,
		mCounter: mCounter,
	}
}

func (as *AddressService) LookupCEP(ctx context.Context, cep string) *address.Address {
	key := digitsOnly(cep)
	if len(key) != 8 {
		return nil
	}

	if addr := as.cache.GetAddress(ctx, key); addr != nil {
		as.mCounter.WithLabelValues("cep_cache_hit_total").Inc()
		return addr
	}

	addr := as.postal.Lookup(ctx, key)
	if addr != nil {
		as.cache.SetAddress(ctx, key, addr)
	}
	as.mCounter.WithLabelValues("cep_lookup_total").Inc()

	return addr
}

func (as *AddressService) SearchAddresses(ctx context.Context, uf, city, street string) address.Addresses {
	return as.postal.Search(ctx, uf, city, street)
}
