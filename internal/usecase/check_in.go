package usecase

import (
	"context"
	"errors"

	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/observability"
)

// CheckInInput identifies the user, the gym and where the user stands.
type CheckInInput struct {
	UserID        string
	GymID         string
	UserLatitude  float64
	UserLongitude float64
}

// CheckInOutput wraps the created check-in.
type CheckInOutput struct {
	CheckIn domain.CheckIn
}

// CheckInUseCase records a visit after enforcing proximity and the daily limit.
type CheckInUseCase struct {
	gyms     domain.GymRepository
	checkIns domain.CheckInRepository
	clock    domain.Clock
}

// NewCheckInUseCase constructs a CheckInUseCase. A nil clock falls back to the UTC system clock.
func NewCheckInUseCase(gyms domain.GymRepository, checkIns domain.CheckInRepository, clock domain.Clock) *CheckInUseCase {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &CheckInUseCase{gyms: gyms, checkIns: checkIns, clock: clock}
}

// Execute checks the user in. Rules are evaluated in order: the gym must
// exist, the user must be within MaxCheckInDistanceKm and the user must not
// have checked in earlier the same calendar day.
func (uc *CheckInUseCase) Execute(ctx context.Context, input CheckInInput) (CheckInOutput, error) {
	gym, err := uc.gyms.FindByID(ctx, input.GymID)
	if err != nil {
		return CheckInOutput{}, err
	}
	if gym == nil {
		observability.RecordCheckInRejected(observability.RejectionGymNotFound)
		return CheckInOutput{}, &domain.ResourceNotFoundError{Resource: "gym", ID: input.GymID}
	}

	distance := domain.DistanceBetweenCoordinates(
		domain.Coordinate{Latitude: input.UserLatitude, Longitude: input.UserLongitude},
		gym.Coordinate(),
	)
	if distance > domain.MaxCheckInDistanceKm {
		observability.RecordCheckInRejected(observability.RejectionMaxDistance)
		return CheckInOutput{}, &domain.MaxDistanceError{DistanceKm: distance, MaxDistanceKm: domain.MaxCheckInDistanceKm}
	}

	now := uc.clock.Now()
	existing, err := uc.checkIns.FindByUserIDOnDate(ctx, input.UserID, now)
	if err != nil {
		return CheckInOutput{}, err
	}
	if existing != nil {
		observability.RecordCheckInRejected(observability.RejectionDailyLimit)
		day, _ := domain.DayBounds(now)
		return CheckInOutput{}, &domain.MaxNumberOfCheckInsError{UserID: input.UserID, Day: day}
	}

	checkIn, err := uc.checkIns.Create(ctx, domain.CreateCheckInData{
		UserID: input.UserID,
		GymID:  input.GymID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMaxNumberOfCheckIns) {
			observability.RecordCheckInRejected(observability.RejectionDailyLimit)
		} else {
			observability.RecordCheckInRejected(observability.RejectionStorageFailed)
		}
		return CheckInOutput{}, err
	}

	observability.RecordCheckInAccepted(checkIn.CreatedAt)
	return CheckInOutput{CheckIn: *checkIn}, nil
}
