package api

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"example.com/gymcheckin/internal/domain"
)

// CreateGymRequest is the payload for POST /gyms.
type CreateGymRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Phone       *string  `json:"phone"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// Validate ensures request correctness.
func (r CreateGymRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	return validateCoordinate(r.Latitude, r.Longitude)
}

// CreateCheckInRequest is the payload for POST /gyms/{gymId}/check-ins.
type CreateCheckInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Validate ensures request correctness.
func (r CreateCheckInRequest) Validate() error {
	return validateCoordinate(r.Latitude, r.Longitude)
}

func validateCoordinate(latitude, longitude *float64) error {
	if latitude == nil {
		return errors.New("latitude is required")
	}
	if longitude == nil {
		return errors.New("longitude is required")
	}
	if math.IsNaN(*latitude) || math.Abs(*latitude) > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if math.IsNaN(*longitude) || math.Abs(*longitude) > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

func parseCoordinateQuery(values url.Values) (domain.Coordinate, error) {
	var parsed [2]*float64
	for i, key := range []string{"latitude", "longitude"} {
		raw := strings.TrimSpace(values.Get(key))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Coordinate{}, fmt.Errorf("%s must be a number", key)
		}
		parsed[i] = &v
	}
	if err := validateCoordinate(parsed[0], parsed[1]); err != nil {
		return domain.Coordinate{}, err
	}
	return domain.Coordinate{Latitude: *parsed[0], Longitude: *parsed[1]}, nil
}

// GymView exposes a gym.
type GymView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// GymResponse wraps a single gym.
type GymResponse struct {
	Gym GymView `json:"gym"`
}

// GymsResponse wraps a gym listing.
type GymsResponse struct {
	Gyms []GymView `json:"gyms"`
}

// CheckInView exposes a check-in.
type CheckInView struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	GymID       string     `json:"gym_id"`
	CreatedAt   time.Time  `json:"created_at"`
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
}

// CheckInResponse wraps a single check-in.
type CheckInResponse struct {
	CheckIn CheckInView `json:"check_in"`
}

// CheckInsResponse packages one history page.
type CheckInsResponse struct {
	CheckIns []CheckInView `json:"check_ins"`
	Page     int           `json:"page"`
}

// MetricsResponse carries per-user totals.
type MetricsResponse struct {
	CheckInsCount int `json:"check_ins_count"`
}

func toGymView(gym domain.Gym) GymView {
	return GymView{
		ID:          gym.ID,
		Title:       gym.Title,
		Description: gym.Description,
		Phone:       gym.Phone,
		Latitude:    gym.Latitude,
		Longitude:   gym.Longitude,
	}
}

func toGymViews(gyms []domain.Gym) []GymView {
	out := make([]GymView, 0, len(gyms))
	for _, gym := range gyms {
		out = append(out, toGymView(gym))
	}
	return out
}

func toCheckInView(checkIn domain.CheckIn) CheckInView {
	return CheckInView{
		ID:          checkIn.ID,
		UserID:      checkIn.UserID,
		GymID:       checkIn.GymID,
		CreatedAt:   checkIn.CreatedAt,
		ValidatedAt: checkIn.ValidatedAt,
	}
}
