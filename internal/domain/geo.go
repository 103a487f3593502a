package domain

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// DistanceBetweenCoordinates returns the great-circle distance in kilometres
// using the spherical law of cosines. Identical coordinates yield exactly 0
// and NaN inputs produce NaN.
func DistanceBetweenCoordinates(from, to Coordinate) float64 {
	if from == to {
		return 0
	}

	fromLat := toRadians(from.Latitude)
	toLat := toRadians(to.Latitude)
	theta := toRadians(from.Longitude - to.Longitude)

	cosine := math.Sin(fromLat)*math.Sin(toLat) +
		math.Cos(fromLat)*math.Cos(toLat)*math.Cos(theta)

	// rounding can push the cosine just outside acos' domain
	cosine = math.Max(-1, math.Min(1, cosine))

	return math.Acos(cosine) * EarthRadiusKm
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
