package utils

import "math"

const earthRadiusKm = 6371.0

// DefaultAvgSpeedKmh approximates city driving in Saudi urban traffic.
const DefaultAvgSpeedKmh = 30.0

// HaversineDistance returns the great-circle distance between two points
// in kilometers.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// TravelMinutes estimates travel time for a distance at the given average
// speed, rounded to the nearest minute.
func TravelMinutes(distanceKm, avgSpeedKmh float64) int {
	if avgSpeedKmh <= 0 {
		avgSpeedKmh = DefaultAvgSpeedKmh
	}
	return int(math.Round(distanceKm / avgSpeedKmh * 60))
}

// WithinRadius reports whether target lies within radiusKm of center.
// Boundary-inclusive.
func WithinRadius(centerLat, centerLon, targetLat, targetLon, radiusKm float64) bool {
	return HaversineDistance(centerLat, centerLon, targetLat, targetLon) <= radiusKm
}

// ValidateCoordinates checks coordinate ranges.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
