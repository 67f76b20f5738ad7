package geometry_test

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqarview/geosearch/internal/pkg/geometry"
)

func TestConvexHullDegenerate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, geometry.ConvexHull(nil))
	})

	t.Run("single point", func(t *testing.T) {
		pts := []orb.Point{{46.6, 24.7}}
		assert.Equal(t, pts, geometry.ConvexHull(pts))
	})

	t.Run("two points", func(t *testing.T) {
		pts := []orb.Point{{46.6, 24.7}, {46.8, 24.9}}
		assert.Equal(t, pts, geometry.ConvexHull(pts))
	})
}

func TestConvexHullSquare(t *testing.T) {
	corners := []orb.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	pts := append([]orb.Point{}, corners...)
	// interior and edge points must not survive
	pts = append(pts, orb.Point{2, 2}, orb.Point{1, 1}, orb.Point{2, 0})

	hull := geometry.ConvexHull(pts)

	require.Len(t, hull, 4)
	assert.ElementsMatch(t, corners, hull)
}

func TestConvexHullCollinearEdgePointExcluded(t *testing.T) {
	// {2, 0} lies exactly on the bottom edge; the strict turn test drops it.
	pts := []orb.Point{{0, 0}, {2, 0}, {4, 0}, {4, 4}, {0, 4}}

	hull := geometry.ConvexHull(pts)

	assert.NotContains(t, hull, orb.Point{2, 0})
	assert.Len(t, hull, 4)
}

func TestConvexHullOrderInvariant(t *testing.T) {
	pts := []orb.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 2}, {3, 1}}

	rng := rand.New(rand.NewSource(7))
	reference := geometry.ConvexHull(pts)
	for i := 0; i < 10; i++ {
		shuffled := make([]orb.Point, len(pts))
		copy(shuffled, pts)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.ElementsMatch(t, reference, geometry.ConvexHull(shuffled))
	}
}

func TestConvexHullDuplicatesCollapse(t *testing.T) {
	pts := []orb.Point{{0, 0}, {0, 0}, {4, 0}, {4, 4}, {4, 4}, {0, 4}, {2, 2}}

	hull := geometry.ConvexHull(pts)

	seen := make(map[orb.Point]int)
	for _, p := range hull {
		seen[p]++
	}
	for p, n := range seen {
		assert.Equal(t, 1, n, "point %v appears %d times", p, n)
	}
}

func TestConvexHullContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pts := make([]orb.Point, 60)
	for i := range pts {
		pts[i] = orb.Point{46.5 + rng.Float64()*0.5, 24.5 + rng.Float64()*0.5}
	}

	ring := geometry.HullRing(pts)
	require.NotNil(t, ring)

	for _, p := range pts {
		onOrInside := planar.RingContains(ring, p) || onRingBoundary(ring, p)
		assert.True(t, onOrInside, "point %v outside hull", p)
	}
}

func onRingBoundary(ring orb.Ring, p orb.Point) bool {
	for _, v := range ring {
		if v == p {
			return true
		}
	}
	return false
}

func TestPriceColor(t *testing.T) {
	t.Run("cheapest is green", func(t *testing.T) {
		assert.Equal(t, 120.0, geometry.PriceHue(100, 100, 500))
		assert.Equal(t, "hsl(120, 80%, 45%)", geometry.PriceColor(100, 100, 500))
	})

	t.Run("most expensive is red", func(t *testing.T) {
		assert.Equal(t, 0.0, geometry.PriceHue(500, 100, 500))
		assert.Equal(t, "hsl(0, 80%, 45%)", geometry.PriceColor(500, 100, 500))
	})

	t.Run("clamped below and above", func(t *testing.T) {
		assert.Equal(t, 120.0, geometry.PriceHue(1, 100, 500))
		assert.Equal(t, 0.0, geometry.PriceHue(9999, 100, 500))
	})

	t.Run("flat range has no division by zero", func(t *testing.T) {
		assert.Equal(t, 120.0, geometry.PriceHue(250, 250, 250))
	})
}
