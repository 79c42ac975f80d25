package cache

import (
	"fmt"

	"trip-itinerary-service/internal/domain"
)

// coordKey renders coordinates at fixed precision so equal points always
// produce the same cache key. Five decimal places is about one meter.
func coordKey(c domain.Coordinates) string {
	return fmt.Sprintf("%.5f,%.5f", c.Lat, c.Lng)
}
