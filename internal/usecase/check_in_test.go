package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"

	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/domain/mocks"
	"example.com/gymcheckin/internal/persistence/memory"
)

type checkInFixture struct {
	gyms     *memory.GymRepository
	checkIns *memory.CheckInRepository
	clock    *domain.FixedClock
	sut      *CheckInUseCase
}

func newCheckInFixture(t *testing.T) *checkInFixture {
	t.Helper()

	clock := domain.NewFixedClock(time.Date(2022, time.January, 20, 8, 0, 0, 0, time.UTC))
	gyms := memory.NewGymRepository()
	checkIns := memory.NewCheckInRepository(clock)

	_, err := gyms.Create(context.Background(), domain.CreateGymData{
		ID:        "gym-01",
		Title:     "JavaScript Gym",
		Latitude:  -20.7439268,
		Longitude: -46.6258785,
	})
	require.NoError(t, err)

	return &checkInFixture{
		gyms:     gyms,
		checkIns: checkIns,
		clock:    clock,
		sut:      NewCheckInUseCase(gyms, checkIns, clock),
	}
}

func atGym01(userID string) CheckInInput {
	return CheckInInput{
		UserID:        userID,
		GymID:         "gym-01",
		UserLatitude:  -20.7439268,
		UserLongitude: -46.6258785,
	}
}

func TestCheckInCreatesCheckIn(t *testing.T) {
	f := newCheckInFixture(t)

	out, err := f.sut.Execute(context.Background(), atGym01("user-01"))
	require.NoError(t, err)
	require.NotEmpty(t, out.CheckIn.ID)
	require.Equal(t, "user-01", out.CheckIn.UserID)
	require.Equal(t, "gym-01", out.CheckIn.GymID)
	require.Equal(t, f.clock.Now(), out.CheckIn.CreatedAt)
}

func TestCheckInRejectsSecondCheckInSameDay(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	_, err := f.sut.Execute(ctx, atGym01("user-01"))
	require.NoError(t, err)

	f.clock.Advance(4 * time.Hour)
	_, err = f.sut.Execute(ctx, atGym01("user-01"))

	var maxErr *domain.MaxNumberOfCheckInsError
	require.ErrorAs(t, err, &maxErr)
	require.Equal(t, "user-01", maxErr.UserID)
	require.Equal(t, time.Date(2022, time.January, 20, 0, 0, 0, 0, time.UTC), maxErr.Day)
}

func TestCheckInAllowsCheckInOnDifferentDays(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	_, err := f.sut.Execute(ctx, atGym01("user-01"))
	require.NoError(t, err)

	f.clock.Set(time.Date(2022, time.January, 21, 8, 0, 0, 0, time.UTC))
	out, err := f.sut.Execute(ctx, atGym01("user-01"))
	require.NoError(t, err)
	require.NotEmpty(t, out.CheckIn.ID)

	count, err := f.checkIns.CountByUserID(ctx, "user-01")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestCheckInRejectsDistantGym(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	_, err := f.gyms.Create(ctx, domain.CreateGymData{
		ID:        "gym-02",
		Title:     "JavaScript Gym",
		Latitude:  -20.7177576,
		Longitude: -46.6222736,
	})
	require.NoError(t, err)

	_, err = f.sut.Execute(ctx, CheckInInput{
		UserID:        "user-01",
		GymID:         "gym-02",
		UserLatitude:  -20.7930207,
		UserLongitude: -46.6012807,
	})

	var distanceErr *domain.MaxDistanceError
	require.ErrorAs(t, err, &distanceErr)
	require.Greater(t, distanceErr.DistanceKm, domain.MaxCheckInDistanceKm)

	count, err := f.checkIns.CountByUserID(ctx, "user-01")
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestCheckInAcceptsUserWithinRadius(t *testing.T) {
	f := newCheckInFixture(t)

	// roughly 47 m south of the gym
	_, err := f.sut.Execute(context.Background(), CheckInInput{
		UserID:        "user-01",
		GymID:         "gym-01",
		UserLatitude:  -20.7435,
		UserLongitude: -46.6258785,
	})
	require.NoError(t, err)
}

func TestCheckInRejectsUnknownGym(t *testing.T) {
	f := newCheckInFixture(t)

	input := atGym01("user-01")
	input.GymID = "non-existing-gym"
	_, err := f.sut.Execute(context.Background(), input)

	var notFound *domain.ResourceNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "non-existing-gym", notFound.ID)
	require.ErrorIs(t, err, domain.ErrResourceNotFound)
}

func TestCheckInConcurrentSameUserSucceedsOnce(t *testing.T) {
	f := newCheckInFixture(t)

	const attempts = 16
	results := make([]error, attempts)
	var g errgroup.Group
	for i := 0; i < attempts; i++ {
		g.Go(func() error {
			_, err := f.sut.Execute(context.Background(), atGym01("user-01"))
			results[i] = err
			return nil
		})
	}
	require.NoError(t, g.Wait())

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, domain.ErrMaxNumberOfCheckIns)
	}
	require.Equal(t, 1, succeeded)

	count, err := f.checkIns.CountByUserID(context.Background(), "user-01")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestCheckInPropagatesRepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	gyms := mocks.NewMockGymRepository(ctrl)
	checkIns := mocks.NewMockCheckInRepository(ctrl)
	clock := domain.NewFixedClock(time.Date(2022, time.January, 20, 8, 0, 0, 0, time.UTC))
	sut := NewCheckInUseCase(gyms, checkIns, clock)
	ctx := context.Background()

	gym := &domain.Gym{ID: "gym-01", Latitude: -20.7439268, Longitude: -46.6258785}
	lookupErr := errors.New("connection reset")
	createErr := errors.New("disk full")

	gyms.EXPECT().FindByID(ctx, "gym-01").Return(nil, lookupErr)
	_, err := sut.Execute(ctx, atGym01("user-01"))
	require.Same(t, lookupErr, err)

	gyms.EXPECT().FindByID(ctx, "gym-01").Return(gym, nil)
	checkIns.EXPECT().FindByUserIDOnDate(ctx, "user-01", clock.Now()).Return(nil, lookupErr)
	_, err = sut.Execute(ctx, atGym01("user-01"))
	require.Same(t, lookupErr, err)

	gyms.EXPECT().FindByID(ctx, "gym-01").Return(gym, nil)
	checkIns.EXPECT().FindByUserIDOnDate(ctx, "user-01", clock.Now()).Return(nil, nil)
	checkIns.EXPECT().Create(ctx, domain.CreateCheckInData{UserID: "user-01", GymID: "gym-01"}).Return(nil, createErr)
	_, err = sut.Execute(ctx, atGym01("user-01"))
	require.Same(t, createErr, err)
}

func TestCheckInDoesNotQueryHistoryWhenTooFar(t *testing.T) {
	ctrl := gomock.NewController(t)
	gyms := mocks.NewMockGymRepository(ctrl)
	checkIns := mocks.NewMockCheckInRepository(ctrl)
	sut := NewCheckInUseCase(gyms, checkIns, domain.NewFixedClock(time.Date(2022, time.January, 20, 8, 0, 0, 0, time.UTC)))
	ctx := context.Background()

	gyms.EXPECT().FindByID(ctx, "gym-02").Return(&domain.Gym{ID: "gym-02", Latitude: -20.7177576, Longitude: -46.6222736}, nil)

	_, err := sut.Execute(ctx, CheckInInput{UserID: "user-01", GymID: "gym-02", UserLatitude: -20.7930207, UserLongitude: -46.6012807})
	require.ErrorIs(t, err, domain.ErrMaxDistance)
}
