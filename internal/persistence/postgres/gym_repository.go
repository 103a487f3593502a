package postgres

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/persistence"
	platformevents "example.com/gymcheckin/libs/go/events"
)

const gymColumns = `gym_id, title, description, phone, latitude, longitude`

// kmPerDegreeLatitude converts a radius into a latitude band for index pre-filtering.
const kmPerDegreeLatitude = domain.EarthRadiusKm * math.Pi / 180

// GymRepository persists gyms in Postgres.
type GymRepository struct {
	pool *pgxpool.Pool
}

// NewGymRepository constructs a GymRepository.
func NewGymRepository(pool *pgxpool.Pool) *GymRepository {
	return &GymRepository{pool: pool}
}

// Create persists the gym and its gym.created outbox event inside a single transaction.
func (r *GymRepository) Create(ctx context.Context, data domain.CreateGymData) (gym *domain.Gym, err error) {
	gym = &domain.Gym{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Phone:       data.Phone,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
	}
	if strings.TrimSpace(gym.ID) == "" {
		gym.ID = uuid.NewString()
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
		`INSERT INTO gyms (gym_id, title, description, phone, latitude, longitude) VALUES ($1,$2,$3,$4,$5,$6)`,
		gym.ID, gym.Title, gym.Description, gym.Phone, gym.Latitude, gym.Longitude,
	)
	if err != nil {
		return nil, err
	}

	err = insertOutbox(ctx, tx, outboxEvent{
		EventType:    platformevents.EventTypeGymCreated,
		AggregateID:  gym.ID,
		PartitionKey: gym.ID,
		Payload: platformevents.GymCreated{
			GymID:       gym.ID,
			Title:       gym.Title,
			Description: gym.Description,
			Phone:       gym.Phone,
			Latitude:    gym.Latitude,
			Longitude:   gym.Longitude,
		},
	})
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return gym, nil
}

// FindByID retrieves a gym by ID, returning (nil, nil) when absent.
func (r *GymRepository) FindByID(ctx context.Context, id string) (*domain.Gym, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+gymColumns+` FROM gyms WHERE gym_id=$1`, id)
	gym, err := scanGym(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &gym, nil
}

// FindManyNearby narrows candidates to the radius' latitude band in SQL and
// applies the exact great-circle distance in Go, keeping creation order.
func (r *GymRepository) FindManyNearby(ctx context.Context, coords domain.Coordinate, maxDistanceKm float64) ([]domain.Gym, error) {
	results := make([]domain.Gym, 0)
	if !(maxDistanceKm >= 0) {
		return results, nil
	}

	band := maxDistanceKm/kmPerDegreeLatitude + 1e-6
	rows, err := r.pool.Query(ctx,
		`SELECT `+gymColumns+` FROM gyms WHERE latitude BETWEEN $1 AND $2 ORDER BY seq`,
		coords.Latitude-band, coords.Latitude+band,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		gym, err := scanGym(rows)
		if err != nil {
			return nil, err
		}
		if domain.DistanceBetweenCoordinates(coords, gym.Coordinate()) <= maxDistanceKm {
			results = append(results, gym)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// SearchMany returns one page of gyms whose title contains query, case-insensitively.
func (r *GymRepository) SearchMany(ctx context.Context, query string, page int) ([]domain.Gym, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"

	rows, err := r.pool.Query(ctx,
		`SELECT `+gymColumns+` FROM gyms WHERE title ILIKE $1 ESCAPE '\' ORDER BY seq LIMIT $2 OFFSET $3`,
		pattern, domain.PageSize, persistence.Offset(page),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]domain.Gym, 0, domain.PageSize)
	for rows.Next() {
		gym, err := scanGym(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, gym)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func scanGym(row pgx.Row) (domain.Gym, error) {
	var gym domain.Gym
	err := row.Scan(&gym.ID, &gym.Title, &gym.Description, &gym.Phone, &gym.Latitude, &gym.Longitude)
	return gym, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
