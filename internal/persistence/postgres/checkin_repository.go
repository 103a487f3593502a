package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/persistence"
	platformevents "example.com/gymcheckin/libs/go/events"
)

const (
	checkInColumns = `check_in_id, user_id, gym_id, created_at, validated_at`

	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	userDayConstraint   = "check_ins_user_day_key"
)

// CheckInRepository persists check-ins in Postgres. The (user_id,
// check_in_day) unique constraint enforces one check-in per user per day,
// with check_in_day taken in the clock's location.
type CheckInRepository struct {
	pool  *pgxpool.Pool
	clock domain.Clock
}

// NewCheckInRepository constructs a CheckInRepository. A nil clock falls back
// to the UTC system clock.
func NewCheckInRepository(pool *pgxpool.Pool, clock domain.Clock) *CheckInRepository {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &CheckInRepository{pool: pool, clock: clock}
}

// Create persists the check-in and its checkin.created outbox event inside a single transaction.
func (r *CheckInRepository) Create(ctx context.Context, data domain.CreateCheckInData) (checkIn *domain.CheckIn, err error) {
	now := r.clock.Now()
	day, _ := domain.DayBounds(now)
	checkIn = &domain.CheckIn{
		ID:        uuid.NewString(),
		UserID:    data.UserID,
		GymID:     data.GymID,
		CreatedAt: now,
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO check_ins (check_in_id, user_id, gym_id, created_at, check_in_day) VALUES ($1,$2,$3,$4,$5::date)`,
		checkIn.ID, checkIn.UserID, checkIn.GymID, checkIn.CreatedAt, day.Format(time.DateOnly),
	)
	if err != nil {
		err = translateCheckInError(err, data, day)
		return nil, err
	}

	err = insertOutbox(ctx, tx, outboxEvent{
		EventType:    platformevents.EventTypeCheckInCreated,
		AggregateID:  checkIn.ID,
		PartitionKey: checkIn.UserID,
		Payload: platformevents.CheckInCreated{
			CheckInID: checkIn.ID,
			UserID:    checkIn.UserID,
			GymID:     checkIn.GymID,
			CreatedAt: checkIn.CreatedAt,
			Day:       day.Format(time.DateOnly),
		},
	})
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return checkIn, nil
}

func translateCheckInError(err error, data domain.CreateCheckInData, day time.Time) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == uniqueViolation && pgErr.ConstraintName == userDayConstraint:
		return &domain.MaxNumberOfCheckInsError{UserID: data.UserID, Day: day}
	case pgErr.Code == foreignKeyViolation:
		return &domain.ResourceNotFoundError{Resource: "gym", ID: data.GymID}
	default:
		return err
	}
}

// FindByUserIDOnDate returns the user's check-in between midnight and
// midnight of date's calendar day, or (nil, nil).
func (r *CheckInRepository) FindByUserIDOnDate(ctx context.Context, userID string, date time.Time) (*domain.CheckIn, error) {
	start, end := domain.DayBounds(date)

	row := r.pool.QueryRow(ctx,
		`SELECT `+checkInColumns+` FROM check_ins
        WHERE user_id=$1 AND created_at >= $2 AND created_at < $3
        ORDER BY created_at LIMIT 1`,
		userID, start, end,
	)
	checkIn, err := r.scanCheckIn(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &checkIn, nil
}

// FindManyByUserID returns one page of the user's check-ins, newest first.
func (r *CheckInRepository) FindManyByUserID(ctx context.Context, userID string, page int) ([]domain.CheckIn, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+checkInColumns+` FROM check_ins
        WHERE user_id=$1
        ORDER BY created_at DESC, seq DESC
        LIMIT $2 OFFSET $3`,
		userID, domain.PageSize, persistence.Offset(page),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]domain.CheckIn, 0, domain.PageSize)
	for rows.Next() {
		checkIn, err := r.scanCheckIn(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, checkIn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// CountByUserID counts the user's check-ins.
func (r *CheckInRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM check_ins WHERE user_id=$1`, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// scanCheckIn reads a row and reports timestamps in the clock's location.
func (r *CheckInRepository) scanCheckIn(row pgx.Row) (domain.CheckIn, error) {
	var checkIn domain.CheckIn
	if err := row.Scan(&checkIn.ID, &checkIn.UserID, &checkIn.GymID, &checkIn.CreatedAt, &checkIn.ValidatedAt); err != nil {
		return domain.CheckIn{}, err
	}
	loc := r.clock.Now().Location()
	checkIn.CreatedAt = checkIn.CreatedAt.In(loc)
	if checkIn.ValidatedAt != nil {
		validated := checkIn.ValidatedAt.In(loc)
		checkIn.ValidatedAt = &validated
	}
	return checkIn, nil
}
