package geometry

import (
	"sort"

	"github.com/paulmach/orb"
)

// ConvexHull computes the convex boundary of a point set using the
// monotone-chain construction. Points use orb convention: X is longitude,
// Y is latitude.
//
// Fewer than 3 points are returned as-is; a degenerate hull is the input,
// not an error. The turn test is strict, so points that lie exactly on a
// hull edge are excluded from the result. The returned vertex set does not
// depend on input order, and duplicate input points collapse.
func ConvexHull(points []orb.Point) []orb.Point {
	if len(points) < 3 {
		return points
	}

	sorted := make([]orb.Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] == sorted[j][0] {
			return sorted[i][1] < sorted[j][1]
		}
		return sorted[i][0] < sorted[j][0]
	})

	var lower []orb.Point
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []orb.Point
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}

// HullRing returns the hull as a closed orb.Ring for GeoJSON output.
// Degenerate hulls (fewer than 3 vertices) yield a nil ring.
func HullRing(points []orb.Point) orb.Ring {
	hull := ConvexHull(points)
	if len(hull) < 3 {
		return nil
	}
	ring := make(orb.Ring, 0, len(hull)+1)
	ring = append(ring, hull...)
	ring = append(ring, hull[0])
	return ring
}

func cross(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}
