package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/persistence"
)

// CheckInRepository stores check-ins in insertion order and stamps them with
// the injected clock.
type CheckInRepository struct {
	mu       sync.RWMutex
	clock    domain.Clock
	checkIns []domain.CheckIn
}

// NewCheckInRepository constructs an empty CheckInRepository. A nil clock
// falls back to the UTC system clock.
func NewCheckInRepository(clock domain.Clock) *CheckInRepository {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &CheckInRepository{clock: clock}
}

// Create implements domain.CheckInRepository. A second check-in by the same
// user on the same calendar day is rejected under the write lock.
func (r *CheckInRepository) Create(ctx context.Context, data domain.CreateCheckInData) (*domain.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	for _, existing := range r.checkIns {
		if existing.UserID == data.UserID && domain.SameDay(existing.CreatedAt, now) {
			day, _ := domain.DayBounds(now)
			return nil, &domain.MaxNumberOfCheckInsError{UserID: data.UserID, Day: day}
		}
	}

	checkIn := domain.CheckIn{
		ID:        uuid.NewString(),
		UserID:    data.UserID,
		GymID:     data.GymID,
		CreatedAt: now,
	}
	r.checkIns = append(r.checkIns, checkIn)
	return &checkIn, nil
}

// FindByUserIDOnDate implements domain.CheckInRepository.
func (r *CheckInRepository) FindByUserIDOnDate(ctx context.Context, userID string, date time.Time) (*domain.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, checkIn := range r.checkIns {
		if checkIn.UserID == userID && domain.SameDay(checkIn.CreatedAt, date) {
			found := checkIn
			return &found, nil
		}
	}
	return nil, nil
}

// FindManyByUserID implements domain.CheckInRepository.
func (r *CheckInRepository) FindManyByUserID(ctx context.Context, userID string, page int) ([]domain.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]domain.CheckIn, 0)
	for i := len(r.checkIns) - 1; i >= 0; i-- {
		if r.checkIns[i].UserID == userID {
			matches = append(matches, r.checkIns[i])
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	start, end := persistence.Window(page, len(matches))
	out := make([]domain.CheckIn, end-start)
	copy(out, matches[start:end])
	return out, nil
}

// CountByUserID implements domain.CheckInRepository.
func (r *CheckInRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, checkIn := range r.checkIns {
		if checkIn.UserID == userID {
			count++
		}
	}
	return count, nil
}
