// Package cache puts a redis read-through cache in front of the service
// catalog. The catalog is read on every onboarding view and changes only
// when an entry is created.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

const (
	catalogKey = "fly8:catalog"
	DefaultTTL = 5 * time.Minute
)

// Services wraps a store.Services, caching ListServices in redis.
type Services struct {
	store.Services

	rdb *redis.Client
	ttl time.Duration
}

// NewServices returns inner unchanged when rdb is nil.
func NewServices(inner store.Services, rdb *redis.Client, ttl time.Duration) store.Services {
	if rdb == nil {
		return inner
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Services{Services: inner, rdb: rdb, ttl: ttl}
}

// ListServices serves from redis when possible. Redis failures fall back to
// the store and are only logged.
func (s *Services) ListServices(ctx context.Context) ([]domain.Service, error) {
	log := slogx.FromContext(ctx)

	raw, err := s.rdb.Get(ctx, catalogKey).Bytes()
	switch {
	case err == nil:
		var cached []domain.Service
		uerr := json.Unmarshal(raw, &cached)
		if uerr == nil {
			return cached, nil
		}
		log.Warn("catalog cache entry unreadable, dropping", "error", uerr)
		s.invalidate(ctx)
	case !errors.Is(err, redis.Nil):
		log.Warn("catalog cache get failed", "error", err)
	}

	list, err := s.Services.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(list); err == nil {
		if err := s.rdb.Set(ctx, catalogKey, data, s.ttl).Err(); err != nil {
			log.Warn("catalog cache set failed", "error", err)
		}
	}
	return list, nil
}

// CreateService writes through and drops the cached list.
func (s *Services) CreateService(ctx context.Context, svc domain.Service) error {
	if err := s.Services.CreateService(ctx, svc); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Services) invalidate(ctx context.Context) {
	if err := s.rdb.Del(ctx, catalogKey).Err(); err != nil {
		slogx.FromContext(ctx).Warn("catalog cache invalidate failed", "error", err)
	}
}

// Store overrides Services() on an underlying store with the cached catalog.
type Store struct {
	store.Store

	services store.Services
}

// Wrap returns st unchanged when rdb is nil.
func Wrap(st store.Store, rdb *redis.Client, ttl time.Duration) store.Store {
	if rdb == nil {
		return st
	}
	return &Store{Store: st, services: NewServices(st.Services(), rdb, ttl)}
}

func (s *Store) Services() store.Services { return s.services }
