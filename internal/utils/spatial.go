package utils

import (
	"math"

	"projectmatch-service/internal/models"
)

const earthRadiusKm = 6371.0

// HaversineDistance calculates the great-circle distance in kilometers
// between two coordinates using the Haversine formula.
func HaversineDistance(a, b models.Coordinate) float64 {
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180.0
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Latitude*math.Pi/180.0)*math.Cos(b.Latitude*math.Pi/180.0)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// BoundingBox calculates a rough bounding box around a center point, used to
// narrow candidate rows before the exact Haversine check.
func BoundingBox(center models.Coordinate, radiusKm float64) (minLat, maxLat, minLng, maxLng float64) {
	latDegreePerKm := 1.0 / 111.32
	lngDegreePerKm := 1.0 / (111.32 * math.Cos(center.Latitude*math.Pi/180.0))

	deltaLat := radiusKm * latDegreePerKm
	deltaLng := radiusKm * lngDegreePerKm

	minLat = center.Latitude - deltaLat
	maxLat = center.Latitude + deltaLat
	minLng = center.Longitude - deltaLng
	maxLng = center.Longitude + deltaLng

	return minLat, maxLat, minLng, maxLng
}
