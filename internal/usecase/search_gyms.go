package usecase

import (
	"context"

	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/persistence"
)

// SearchGymsInput is a title query and a 1-indexed page.
type SearchGymsInput struct {
	Query string
	Page  int
}

// SearchGymsOutput lists one page of matching gyms.
type SearchGymsOutput struct {
	Gyms []domain.Gym
}

// SearchGymsUseCase finds gyms by title.
type SearchGymsUseCase struct {
	gyms domain.GymRepository
}

// NewSearchGymsUseCase constructs a SearchGymsUseCase.
func NewSearchGymsUseCase(gyms domain.GymRepository) *SearchGymsUseCase {
	return &SearchGymsUseCase{gyms: gyms}
}

// Execute returns the requested page of gyms whose title contains the query.
func (uc *SearchGymsUseCase) Execute(ctx context.Context, input SearchGymsInput) (SearchGymsOutput, error) {
	gyms, err := uc.gyms.SearchMany(ctx, input.Query, persistence.NormalizePage(input.Page))
	if err != nil {
		return SearchGymsOutput{}, err
	}
	return SearchGymsOutput{Gyms: gyms}, nil
}
