package usecase

import (
	"context"

	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/persistence"
)

// FetchUserCheckInsHistoryInput selects a user's history page. Pages below 1 read page 1.
type FetchUserCheckInsHistoryInput struct {
	UserID string
	Page   int
}

// FetchUserCheckInsHistoryOutput lists one page of check-ins, newest first.
type FetchUserCheckInsHistoryOutput struct {
	CheckIns []domain.CheckIn
}

// FetchUserCheckInsHistoryUseCase pages through a user's check-ins.
type FetchUserCheckInsHistoryUseCase struct {
	checkIns domain.CheckInRepository
}

// NewFetchUserCheckInsHistoryUseCase constructs a FetchUserCheckInsHistoryUseCase.
func NewFetchUserCheckInsHistoryUseCase(checkIns domain.CheckInRepository) *FetchUserCheckInsHistoryUseCase {
	return &FetchUserCheckInsHistoryUseCase{checkIns: checkIns}
}

// Execute returns the requested page.
func (uc *FetchUserCheckInsHistoryUseCase) Execute(ctx context.Context, input FetchUserCheckInsHistoryInput) (FetchUserCheckInsHistoryOutput, error) {
	checkIns, err := uc.checkIns.FindManyByUserID(ctx, input.UserID, persistence.NormalizePage(input.Page))
	if err != nil {
		return FetchUserCheckInsHistoryOutput{}, err
	}
	return FetchUserCheckInsHistoryOutput{CheckIns: checkIns}, nil
}
