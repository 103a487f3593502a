package usecase

import "example.com/gymcheckin/internal/domain"

// UseCases bundles every operation wired to the same repositories and clock.
type UseCases struct {
	CreateGym               *CreateGymUseCase
	SearchGyms              *SearchGymsUseCase
	FetchNearbyGyms         *FetchNearbyGymsUseCase
	CheckIn                 *CheckInUseCase
	FetchUserCheckInHistory *FetchUserCheckInsHistoryUseCase
	GetUserMetrics          *GetUserMetricsUseCase
}

// NewUseCases wires all use-cases to the supplied repositories.
func NewUseCases(gyms domain.GymRepository, checkIns domain.CheckInRepository, clock domain.Clock) UseCases {
	return UseCases{
		CreateGym:               NewCreateGymUseCase(gyms),
		SearchGyms:              NewSearchGymsUseCase(gyms),
		FetchNearbyGyms:         NewFetchNearbyGymsUseCase(gyms),
		CheckIn:                 NewCheckInUseCase(gyms, checkIns, clock),
		FetchUserCheckInHistory: NewFetchUserCheckInsHistoryUseCase(checkIns),
		GetUserMetrics:          NewGetUserMetricsUseCase(checkIns),
	}
}
