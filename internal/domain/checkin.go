package domain

import "time"

// CheckIn records a user's visit to a gym. Check-ins are never mutated or deleted.
type CheckIn struct {
	ID          string
	UserID      string
	GymID       string
	CreatedAt   time.Time
	ValidatedAt *time.Time
}

// CreateCheckInData is the repository input for a new check-in. CreatedAt is
// always taken from the repository clock.
type CreateCheckInData struct {
	UserID string
	GymID  string
}
