package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrResourceNotFound matches any ResourceNotFoundError via errors.Is.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrMaxDistance matches any MaxDistanceError via errors.Is.
	ErrMaxDistance = errors.New("max distance reached")
	// ErrMaxNumberOfCheckIns matches any MaxNumberOfCheckInsError via errors.Is.
	ErrMaxNumberOfCheckIns = errors.New("max number of check-ins reached")
)

// ResourceNotFoundError is returned when a referenced entity does not exist.
type ResourceNotFoundError struct {
	Resource string
	ID       string
}

func (e *ResourceNotFoundError) Error() string {
	if e.Resource == "" {
		return ErrResourceNotFound.Error()
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func (e *ResourceNotFoundError) Is(target error) bool { return target == ErrResourceNotFound }

// MaxDistanceError is returned when a user is too far from the gym to check in.
type MaxDistanceError struct {
	DistanceKm    float64
	MaxDistanceKm float64
}

func (e *MaxDistanceError) Error() string {
	return fmt.Sprintf("%s: %.3f km exceeds %.3f km", ErrMaxDistance, e.DistanceKm, e.MaxDistanceKm)
}

func (e *MaxDistanceError) Is(target error) bool { return target == ErrMaxDistance }

// MaxNumberOfCheckInsError is returned when the user already checked in on the same calendar day.
type MaxNumberOfCheckInsError struct {
	UserID string
	Day    time.Time
}

func (e *MaxNumberOfCheckInsError) Error() string {
	if e.Day.IsZero() {
		return ErrMaxNumberOfCheckIns.Error()
	}
	return fmt.Sprintf("%s: user %q on %s", ErrMaxNumberOfCheckIns, e.UserID, e.Day.Format(time.DateOnly))
}

func (e *MaxNumberOfCheckInsError) Is(target error) bool { return target == ErrMaxNumberOfCheckIns }
