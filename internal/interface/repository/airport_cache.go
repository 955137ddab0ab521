package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/internal/domain/repository"
	"travel-sample-api/pkg/logger"
	"travel-sample-api/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// cacheClient is the part of *redis.Client the cache needs
type cacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedAirportRepository serves airport searches from Redis before falling back to SQL.
// Airport data is read-only, so entries only expire by TTL.
type CachedAirportRepository struct {
	next   repository.AirportRepository
	client cacheClient
	ttl    time.Duration
	logger logger.Logger
}

// NewCachedAirportRepository wraps an airport repository with a Redis read-through cache
func NewCachedAirportRepository(next repository.AirportRepository, client cacheClient, ttl time.Duration, logger logger.Logger) repository.AirportRepository {
	return &CachedAirportRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func airportCacheKey(query utils.AirportQuery) string {
	return "airports:" + query.Kind.String() + ":" + query.Value
}

// Search returns cached rows when present; cache failures only cost a backend query
func (r *CachedAirportRepository) Search(ctx context.Context, query utils.AirportQuery) ([]entity.Airport, string, error) {
	key := airportCacheKey(query)

	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var airports []entity.Airport
		if jsonErr := json.Unmarshal(raw, &airports); jsonErr == nil {
			return airports, "Cache hit - " + key, nil
		}
		r.logger.Warn("Discarding unreadable airport cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("Airport cache read failed", "key", key, "error", err)
	}

	airports, desc, err := r.next.Search(ctx, query)
	if err != nil {
		return nil, desc, err
	}

	if data, jsonErr := json.Marshal(airports); jsonErr == nil {
		if setErr := r.client.Set(ctx, key, data, r.ttl).Err(); setErr != nil {
			r.logger.Warn("Airport cache write failed", "key", key, "error", setErr)
		}
	}
	return airports, desc, nil
}

// ResolveCodes is not cached; exact-name resolution is already an indexed lookup
func (r *CachedAirportRepository) ResolveCodes(ctx context.Context, fromName, toName string) ([]entity.ResolvedAirport, string, error) {
	return r.next.ResolveCodes(ctx, fromName, toName)
}
