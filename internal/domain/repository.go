// Package domain holds the gym check-in entities, rules and repository contracts.
package domain

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"time"
)

const (
	// MaxCheckInDistanceKm is the furthest a user may stand from a gym and still check in.
	MaxCheckInDistanceKm = 0.1
	// MaxNearbyDistanceKm is the radius used when listing gyms near a user.
	MaxNearbyDistanceKm = 10.0
	// PageSize is the number of items returned per page by paginated queries.
	PageSize = 20
)

// GymRepository captures gym persistence. FindByID returns (nil, nil) when the gym is absent.
type GymRepository interface {
	Create(ctx context.Context, data CreateGymData) (*Gym, error)
	FindByID(ctx context.Context, id string) (*Gym, error)
	// FindManyNearby returns gyms within maxDistanceKm of coords in creation order.
	FindManyNearby(ctx context.Context, coords Coordinate, maxDistanceKm float64) ([]Gym, error)
	// SearchMany returns the 1-indexed page of gyms whose title contains query.
	SearchMany(ctx context.Context, query string, page int) ([]Gym, error)
}

// CheckInRepository captures check-in persistence.
type CheckInRepository interface {
	Create(ctx context.Context, data CreateCheckInData) (*CheckIn, error)
	// FindByUserIDOnDate returns the user's check-in on the calendar day of date
	// in date's location, or (nil, nil).
	FindByUserIDOnDate(ctx context.Context, userID string, date time.Time) (*CheckIn, error)
	// FindManyByUserID returns the 1-indexed page of check-ins, newest first.
	FindManyByUserID(ctx context.Context, userID string, page int) ([]CheckIn, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
}
