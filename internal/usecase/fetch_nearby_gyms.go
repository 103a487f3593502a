package usecase

import (
	"context"

	"example.com/gymcheckin/internal/domain"
)

// FetchNearbyGymsInput is the user's current position.
type FetchNearbyGymsInput struct {
	UserLatitude  float64
	UserLongitude float64
}

// FetchNearbyGymsOutput lists gyms within MaxNearbyDistanceKm.
type FetchNearbyGymsOutput struct {
	Gyms []domain.Gym
}

// FetchNearbyGymsUseCase lists gyms close to the user.
type FetchNearbyGymsUseCase struct {
	gyms domain.GymRepository
}

// NewFetchNearbyGymsUseCase constructs a FetchNearbyGymsUseCase.
func NewFetchNearbyGymsUseCase(gyms domain.GymRepository) *FetchNearbyGymsUseCase {
	return &FetchNearbyGymsUseCase{gyms: gyms}
}

// Execute returns the gyms within the fixed nearby radius.
func (uc *FetchNearbyGymsUseCase) Execute(ctx context.Context, input FetchNearbyGymsInput) (FetchNearbyGymsOutput, error) {
	gyms, err := uc.gyms.FindManyNearby(ctx, domain.Coordinate{
		Latitude:  input.UserLatitude,
		Longitude: input.UserLongitude,
	}, domain.MaxNearbyDistanceKm)
	if err != nil {
		return FetchNearbyGymsOutput{}, err
	}
	return FetchNearbyGymsOutput{Gyms: gyms}, nil
}
