package usecase

import (
	"math"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/domain"
	"github.com/aqarview/geosearch/internal/pkg/geometry"
	"github.com/aqarview/geosearch/internal/usecase/dto"
)

// OverlayUseCase derives the map geometry for a charted listing set:
// convex boundary ring, per-listing price colors, the recomputed
// bounding rectangle and the mean center. Listings without a usable
// position are skipped; they stay in list views but never reach the map.
type OverlayUseCase struct {
	logger *zap.Logger
}

func NewOverlayUseCase(logger *zap.Logger) *OverlayUseCase {
	return &OverlayUseCase{logger: logger}
}

// Build computes the overlay. Degenerate inputs degrade per part: fewer
// than three placed listings yield no hull, zero placed listings yield
// no bounds and no center.
func (uc *OverlayUseCase) Build(req dto.OverlayRequest) (*dto.OverlayResponse, error) {
	placed := make([]dto.OverlayListingInput, 0, len(req.Listings))
	points := make([]orb.Point, 0, len(req.Listings))

	minPrice := math.Inf(1)
	maxPrice := math.Inf(-1)

	for _, l := range req.Listings {
		if math.IsNaN(l.Lat) || math.IsNaN(l.Lon) || (l.Lat == 0 && l.Lon == 0) {
			continue
		}
		placed = append(placed, l)
		points = append(points, orb.Point{l.Lon, l.Lat})
		minPrice = math.Min(minPrice, l.Price)
		maxPrice = math.Max(maxPrice, l.Price)
	}

	resp := &dto.OverlayResponse{
		Markers: make([]dto.MarkerDTO, 0, len(placed)),
		Total:   len(placed),
	}
	if len(placed) == 0 {
		return resp, nil
	}

	for _, l := range placed {
		resp.Markers = append(resp.Markers, dto.MarkerDTO{
			ID:         l.ID,
			Lat:        l.Lat,
			Lon:        l.Lon,
			Color:      geometry.PriceColor(l.Price, minPrice, maxPrice),
			PriceLabel: domain.FormatPrice(l.Price),
		})
	}

	if ring := geometry.HullRing(points); ring != nil {
		resp.Hull = make([]dto.PointDTO, 0, len(ring))
		for _, p := range ring {
			resp.Hull = append(resp.Hull, dto.PointDTO{Lat: p.Y(), Lon: p.X()})
		}
	}

	bound := orb.MultiPoint(points).Bound()
	resp.Bounds = &dto.BoundsDTO{
		North: bound.Max.Y(),
		South: bound.Min.Y(),
		East:  bound.Max.X(),
		West:  bound.Min.X(),
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Y()
		sumLon += p.X()
	}
	resp.Center = &dto.PointDTO{
		Lat: sumLat / float64(len(points)),
		Lon: sumLon / float64(len(points)),
	}

	uc.logger.Debug("Overlay built",
		zap.Int("placed", len(placed)),
		zap.Int("hull_vertices", len(resp.Hull)),
	)

	return resp, nil
}
