// Package cache fronts the postal directory with Redis. Every cache
// failure degrades to a miss so a Redis outage never blocks lookups.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"contact-manager-api/config"
	"contact-manager-api/internal/domain/address"
)

const addressTTL = 24 * time.Hour

type Redis struct {
	client *redis.Client
	log    *zap.Logger
}

func New(ctx context.Context, logger *zap.Logger, cfg config.Redis) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Host,
		Password:     cfg.Password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("redis connected successfully")

	return &Redis{client: client, log: logger}, nil
}

func (r *Redis) Close() error { return r.client.Close() }

func (r *Redis) GetAddress(ctx context.Context, cep string) *address.Address {
	raw, err := r.client.Get(ctx, addressKey(cep)).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn("address cache read failed", zap.String("cep", cep), zap.Error(err))
		}
		return nil
	}

	a := new(address.Address)
	if err = json.Unmarshal(raw, a); err != nil {
		r.log.Warn("address cache entry corrupted", zap.String("cep", cep), zap.Error(err))
		return nil
	}

	return a
}

func (r *Redis) SetAddress(ctx context.Context, cep string, addr *address.Address) {
	b, err := json.Marshal(addr)
	if err != nil {
		return
	}
	if err = r.client.Set(ctx, addressKey(cep), b, addressTTL).Err(); err != nil {
		r.log.Warn("address cache write failed", zap.String("cep", cep), zap.Error(err))
	}
}

func addressKey(cep string) string { return "address:cep:" + cep }
