package events

// GymCreated is emitted when a gym is registered.
type GymCreated struct {
	GymID       string  `json:"gym_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
