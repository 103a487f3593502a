// Package events defines the event payloads published by the check-in service.
package events

import "time"

// Event types and their topics.
const (
	EventTypeCheckInCreated = "checkin.created"
	EventTypeGymCreated     = "gym.created"

	TopicCheckInEvents = "check_in_events"
	TopicGymEvents     = "gym_events"
)

// CheckInCreated represents the message emitted when a user checks in at a gym.
type CheckInCreated struct {
	CheckInID string    `json:"check_in_id"`
	UserID    string    `json:"user_id"`
	GymID     string    `json:"gym_id"`
	CreatedAt time.Time `json:"created_at"`
	Day       string    `json:"day"`
}
