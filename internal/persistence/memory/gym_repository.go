// Package memory provides in-memory repositories for local development and tests.
package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/persistence"
)

// ErrDuplicateID is returned when a gym is created with an identity already in use.
var ErrDuplicateID = errors.New("duplicate gym id")

// GymRepository stores gyms in insertion order.
type GymRepository struct {
	mu    sync.RWMutex
	gyms  []domain.Gym
	index map[string]int
}

// NewGymRepository constructs an empty GymRepository.
func NewGymRepository() *GymRepository {
	return &GymRepository{index: make(map[string]int)}
}

// Create implements domain.GymRepository.
func (r *GymRepository) Create(ctx context.Context, data domain.CreateGymData) (*domain.Gym, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gym := domain.Gym{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Phone:       data.Phone,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
	}
	if strings.TrimSpace(gym.ID) == "" {
		gym.ID = uuid.NewString()
	}

	if _, ok := r.index[gym.ID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, gym.ID)
	}

	r.index[gym.ID] = len(r.gyms)
	r.gyms = append(r.gyms, gym)
	return &gym, nil
}

// FindByID implements domain.GymRepository.
func (r *GymRepository) FindByID(ctx context.Context, id string) (*domain.Gym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	gym := r.gyms[pos]
	return &gym, nil
}

// FindManyNearby implements domain.GymRepository.
func (r *GymRepository) FindManyNearby(ctx context.Context, coords domain.Coordinate, maxDistanceKm float64) ([]domain.Gym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]domain.Gym, 0)
	for _, gym := range r.gyms {
		if domain.DistanceBetweenCoordinates(coords, gym.Coordinate()) <= maxDistanceKm {
			results = append(results, gym)
		}
	}
	return results, nil
}

// SearchMany implements domain.GymRepository with a case-insensitive substring match.
func (r *GymRepository) SearchMany(ctx context.Context, query string, page int) ([]domain.Gym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	normalized := strings.ToLower(strings.TrimSpace(query))
	matches := make([]domain.Gym, 0)
	for _, gym := range r.gyms {
		if normalized == "" || strings.Contains(strings.ToLower(gym.Title), normalized) {
			matches = append(matches, gym)
		}
	}

	start, end := persistence.Window(page, len(matches))
	out := make([]domain.Gym, end-start)
	copy(out, matches[start:end])
	return out, nil
}
