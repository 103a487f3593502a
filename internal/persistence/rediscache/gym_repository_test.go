package rediscache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/domain/mocks"
)

func TestCacheKeyKeepsFullPrecision(t *testing.T) {
	a := cacheKey(3, domain.Coordinate{Latitude: -20.7439268, Longitude: -46.6258785}, 10)
	b := cacheKey(3, domain.Coordinate{Latitude: -20.74392681, Longitude: -46.6258785}, 10)

	require.Equal(t, "gyms:nearby:v3:-20.7439268:-46.6258785:10", a)
	require.NotEqual(t, a, b)
	require.NotEqual(t, a, cacheKey(4, domain.Coordinate{Latitude: -20.7439268, Longitude: -46.6258785}, 10))
}

func TestFindManyNearbyFallsThroughWhenRedisIsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockGymRepository(ctrl)

	coords := domain.Coordinate{Latitude: -27.2092052, Longitude: -49.6401091}
	want := []domain.Gym{{ID: "gym-01", Title: "JavaScript Gym", Latitude: coords.Latitude, Longitude: coords.Longitude}}
	inner.EXPECT().FindManyNearby(gomock.Any(), coords, 10.0).Return(want, nil)

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewGymRepository(inner, client, time.Minute, WithLogger(slog.New(slog.DiscardHandler)))

	got, err := repo.FindManyNearby(context.Background(), coords, 10)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
