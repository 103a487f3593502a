package domain

// Gym is a physical location users check in to. Gyms are immutable once created.
type Gym struct {
	ID          string
	Title       string
	Description *string
	Phone       *string
	Latitude    float64
	Longitude   float64
}

// Coordinate returns the gym position.
func (g Gym) Coordinate() Coordinate {
	return Coordinate{Latitude: g.Latitude, Longitude: g.Longitude}
}

// CreateGymData is the repository input for a new gym. An empty ID lets the
// repository assign one.
type CreateGymData struct {
	ID          string
	Title       string
	Description *string
	Phone       *string
	Latitude    float64
	Longitude   float64
}
