package domain

// ViewportBounds is the rectangular lat/lon extent visible on the map.
// No antimeridian handling: east must be greater than west.
type ViewportBounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

func (b ViewportBounds) Valid() bool {
	if b.North <= b.South || b.East <= b.West {
		return false
	}
	return b.North <= 90 && b.South >= -90 && b.East <= 180 && b.West >= -180
}

// Contains reports whether a point lies inside the rectangle, borders
// included.
func (b ViewportBounds) Contains(lat, lon float64) bool {
	return lat >= b.South && lat <= b.North && lon >= b.West && lon <= b.East
}
