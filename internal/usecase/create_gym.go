package usecase

import (
	"context"

	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/observability"
)

// CreateGymInput captures a gym registration. Coordinates are not validated here.
type CreateGymInput struct {
	Title       string
	Description *string
	Phone       *string
	Latitude    float64
	Longitude   float64
}

// CreateGymOutput wraps the created gym.
type CreateGymOutput struct {
	Gym domain.Gym
}

// CreateGymUseCase registers gyms.
type CreateGymUseCase struct {
	gyms domain.GymRepository
}

// NewCreateGymUseCase constructs a CreateGymUseCase.
func NewCreateGymUseCase(gyms domain.GymRepository) *CreateGymUseCase {
	return &CreateGymUseCase{gyms: gyms}
}

// Execute persists the gym and returns it with its assigned identity.
func (uc *CreateGymUseCase) Execute(ctx context.Context, input CreateGymInput) (CreateGymOutput, error) {
	gym, err := uc.gyms.Create(ctx, domain.CreateGymData{
		Title:       input.Title,
		Description: input.Description,
		Phone:       input.Phone,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	})
	if err != nil {
		return CreateGymOutput{}, err
	}
	observability.RecordGymCreated()
	return CreateGymOutput{Gym: *gym}, nil
}
