package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"projectmatch-service/internal/models"
)

var (
	paris = models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}
	lyon  = models.Coordinate{Latitude: 45.7640, Longitude: 4.8357}
)

func TestHaversineDistance_ZeroForSamePoint(t *testing.T) {
	assert.InDelta(t, 0, HaversineDistance(paris, paris), 1e-9)
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	assert.Equal(t, HaversineDistance(paris, lyon), HaversineDistance(lyon, paris))
}

func TestHaversineDistance_ParisLyon(t *testing.T) {
	// Known reference distance between the two city centers.
	assert.InDelta(t, 392, HaversineDistance(paris, lyon), 5)
}

func TestHaversineDistance_AntimeridianStaysFinite(t *testing.T) {
	a := models.Coordinate{Latitude: 0, Longitude: 179.9}
	b := models.Coordinate{Latitude: 0, Longitude: -179.9}
	d := HaversineDistance(a, b)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 50.0)
}

func TestBoundingBox_ContainsRadius(t *testing.T) {
	minLat, maxLat, minLng, maxLng := BoundingBox(paris, 50)

	assert.Less(t, minLat, paris.Latitude)
	assert.Greater(t, maxLat, paris.Latitude)
	assert.Less(t, minLng, paris.Longitude)
	assert.Greater(t, maxLng, paris.Longitude)

	// A point 50km due north must fall inside the box.
	north := models.Coordinate{Latitude: paris.Latitude + 50.0/111.32, Longitude: paris.Longitude}
	assert.LessOrEqual(t, north.Latitude, maxLat)
}
