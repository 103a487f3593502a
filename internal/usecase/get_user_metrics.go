package usecase

import (
	"context"

	"example.com/gymcheckin/internal/domain"
)

// GetUserMetricsInput identifies the user.
type GetUserMetricsInput struct {
	UserID string
}

// GetUserMetricsOutput carries the user's lifetime check-in count.
type GetUserMetricsOutput struct {
	CheckInsCount int
}

// GetUserMetricsUseCase reports per-user check-in totals.
type GetUserMetricsUseCase struct {
	checkIns domain.CheckInRepository
}

// NewGetUserMetricsUseCase constructs a GetUserMetricsUseCase.
func NewGetUserMetricsUseCase(checkIns domain.CheckInRepository) *GetUserMetricsUseCase {
	return &GetUserMetricsUseCase{checkIns: checkIns}
}

// Execute counts the user's check-ins.
func (uc *GetUserMetricsUseCase) Execute(ctx context.Context, input GetUserMetricsInput) (GetUserMetricsOutput, error) {
	count, err := uc.checkIns.CountByUserID(ctx, input.UserID)
	if err != nil {
		return GetUserMetricsOutput{}, err
	}
	return GetUserMetricsOutput{CheckInsCount: count}, nil
}
