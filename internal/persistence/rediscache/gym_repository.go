// Package rediscache decorates gym repositories with a Redis-backed cache for
// nearby-gym lookups.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/observability"
)

const (
	keyPrefix     = "gyms:nearby:"
	generationKey = keyPrefix + "generation"
)

// GymRepository caches FindManyNearby results. Every Create bumps a
// generation counter that is part of each cache key, so earlier entries stop
// being read and expire on their own. Redis failures fall through to the
// wrapped repository.
type GymRepository struct {
	domain.GymRepository

	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Option configures a GymRepository.
type Option func(*GymRepository)

// WithLogger overrides the logger used for cache failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *GymRepository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewGymRepository wraps inner with a cache stored in client.
func NewGymRepository(inner domain.GymRepository, client *redis.Client, ttl time.Duration, opts ...Option) *GymRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	repo := &GymRepository{
		GymRepository: inner,
		client:        client,
		ttl:           ttl,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(repo)
		}
	}
	return repo
}

// Create delegates to the wrapped repository and invalidates cached listings.
func (r *GymRepository) Create(ctx context.Context, data domain.CreateGymData) (*domain.Gym, error) {
	gym, err := r.GymRepository.Create(ctx, data)
	if err != nil {
		return nil, err
	}
	if err := r.client.Incr(ctx, generationKey).Err(); err != nil {
		r.logger.WarnContext(ctx, "nearby cache invalidation failed", "gym_id", gym.ID, "error", err)
	}
	return gym, nil
}

// FindManyNearby serves cached results for the exact coordinates and radius.
func (r *GymRepository) FindManyNearby(ctx context.Context, coords domain.Coordinate, maxDistanceKm float64) ([]domain.Gym, error) {
	generation, err := r.generation(ctx)
	if err != nil {
		observability.RecordNearbyCacheLookup("error")
		r.logger.WarnContext(ctx, "nearby cache unavailable", "error", err)
		return r.GymRepository.FindManyNearby(ctx, coords, maxDistanceKm)
	}

	key := cacheKey(generation, coords, maxDistanceKm)
	cached, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var gyms []domain.Gym
		if decodeErr := json.Unmarshal(cached, &gyms); decodeErr == nil {
			observability.RecordNearbyCacheLookup("hit")
			return gyms, nil
		}
		observability.RecordNearbyCacheLookup("error")
	case errors.Is(err, redis.Nil):
		observability.RecordNearbyCacheLookup("miss")
	default:
		observability.RecordNearbyCacheLookup("error")
		r.logger.WarnContext(ctx, "nearby cache read failed", "error", err)
	}

	gyms, err := r.GymRepository.FindManyNearby(ctx, coords, maxDistanceKm)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(gyms)
	if err == nil {
		err = r.client.Set(ctx, key, body, r.ttl).Err()
	}
	if err != nil {
		r.logger.WarnContext(ctx, "nearby cache write failed", "error", err)
	}
	return gyms, nil
}

func (r *GymRepository) generation(ctx context.Context) (int64, error) {
	value, err := r.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return value, err
}

func cacheKey(generation int64, coords domain.Coordinate, maxDistanceKm float64) string {
	return fmt.Sprintf("%sv%d:%s:%s:%s", keyPrefix, generation,
		strconv.FormatFloat(coords.Latitude, 'g', -1, 64),
		strconv.FormatFloat(coords.Longitude, 'g', -1, 64),
		strconv.FormatFloat(maxDistanceKm, 'g', -1, 64),
	)
}
