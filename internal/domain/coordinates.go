package domain

import "math"

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Valid reports whether the coordinates fall inside the WGS84 ranges.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
