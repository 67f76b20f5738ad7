package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aqarview/geosearch/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	riyadhLat, riyadhLon := 24.7136, 46.6753
	jeddahLat, jeddahLon := 21.4858, 39.1925

	t.Run("known distance Riyadh-Jeddah", func(t *testing.T) {
		d := utils.HaversineDistance(riyadhLat, riyadhLon, jeddahLat, jeddahLon)
		assert.InDelta(t, 850, d, 20)
	})

	t.Run("symmetry", func(t *testing.T) {
		ab := utils.HaversineDistance(riyadhLat, riyadhLon, jeddahLat, jeddahLon)
		ba := utils.HaversineDistance(jeddahLat, jeddahLon, riyadhLat, riyadhLon)
		assert.Equal(t, ab, ba)
	})

	t.Run("identity", func(t *testing.T) {
		assert.Zero(t, utils.HaversineDistance(riyadhLat, riyadhLon, riyadhLat, riyadhLon))
	})

	t.Run("triangle inequality", func(t *testing.T) {
		cLat, cLon := 26.4207, 50.0888 // Dammam
		ab := utils.HaversineDistance(riyadhLat, riyadhLon, jeddahLat, jeddahLon)
		bc := utils.HaversineDistance(jeddahLat, jeddahLon, cLat, cLon)
		ac := utils.HaversineDistance(riyadhLat, riyadhLon, cLat, cLon)
		assert.LessOrEqual(t, ac, ab+bc)
	})
}

func TestTravelMinutes(t *testing.T) {
	t.Run("default city speed", func(t *testing.T) {
		assert.Equal(t, 30, utils.TravelMinutes(15, 30))
		assert.Equal(t, 20, utils.TravelMinutes(10, 30))
	})

	t.Run("custom speed", func(t *testing.T) {
		assert.Equal(t, 60, utils.TravelMinutes(100, 100))
	})

	t.Run("monotonic in distance", func(t *testing.T) {
		prev := -1
		for d := 0.0; d <= 50; d += 0.7 {
			m := utils.TravelMinutes(d, 30)
			assert.GreaterOrEqual(t, m, prev)
			prev = m
		}
	})

	t.Run("non-positive speed falls back to default", func(t *testing.T) {
		assert.Equal(t, utils.TravelMinutes(15, utils.DefaultAvgSpeedKmh), utils.TravelMinutes(15, 0))
	})
}

func TestWithinRadius(t *testing.T) {
	t.Run("inside", func(t *testing.T) {
		assert.True(t, utils.WithinRadius(24.7136, 46.6753, 24.7200, 46.6800, 5))
	})

	t.Run("outside", func(t *testing.T) {
		assert.False(t, utils.WithinRadius(24.7136, 46.6753, 21.4858, 39.1925, 5))
	})

	t.Run("boundary inclusive", func(t *testing.T) {
		d := utils.HaversineDistance(24.7136, 46.6753, 24.7200, 46.6800)
		assert.True(t, utils.WithinRadius(24.7136, 46.6753, 24.7200, 46.6800, d))
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(24.7, 46.7))
	assert.False(t, utils.ValidateCoordinates(91, 46.7))
	assert.False(t, utils.ValidateCoordinates(24.7, -181))
}
