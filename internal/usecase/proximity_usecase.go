package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/domain"
	"github.com/aqarview/geosearch/internal/domain/repository"
	"github.com/aqarview/geosearch/internal/pkg/arabictext"
	"github.com/aqarview/geosearch/internal/pkg/utils"
)

// ProximityUseCase admits listings against the amenity requirements of a
// filter state. Per category the classification attributes narrow the
// candidate amenity set first; a listing is admitted iff at least one
// remaining amenity is reachable within the category's travel-time
// threshold. An active requirement with zero candidates rejects every
// listing rather than silently passing them through.
type ProximityUseCase struct {
	amenityRepo repository.AmenityRepository
	logger      *zap.Logger
	avgSpeedKmh float64
}

func NewProximityUseCase(
	amenityRepo repository.AmenityRepository,
	logger *zap.Logger,
	avgSpeedKmh float64,
) *ProximityUseCase {
	return &ProximityUseCase{
		amenityRepo: amenityRepo,
		logger:      logger,
		avgSpeedKmh: avgSpeedKmh,
	}
}

// Admit filters listings by the active proximity requirements. With no
// active requirement the input passes through untouched.
func (uc *ProximityUseCase) Admit(
	ctx context.Context,
	listings []domain.Listing,
	filters domain.FilterState,
) ([]domain.Listing, error) {
	schoolActive := filters.SchoolRequirementActive()
	universityActive := filters.UniversityRequirementActive()
	metroActive := filters.MetroRequirementActive()
	mosqueActive := filters.MosqueRequirementActive()

	if !schoolActive && !universityActive && !metroActive && !mosqueActive {
		return listings, nil
	}

	var schools, universities, mosques, metroStops []domain.AmenityPoint

	if schoolActive {
		points, err := uc.amenityRepo.GetByCategory(ctx, domain.AmenitySchool, domain.AmenityFilter{})
		if err != nil {
			return nil, err
		}
		schools = filterSchools(points, filters.SchoolGender, filters.SchoolLevel)
	}

	if universityActive {
		points, err := uc.amenityRepo.GetByCategory(ctx, domain.AmenityUniversity, domain.AmenityFilter{})
		if err != nil {
			return nil, err
		}
		universities = filterUniversities(points, filters.SelectedUniversity)
	}

	if metroActive {
		points, err := uc.amenityRepo.GetByCategory(ctx, domain.AmenityMetro, domain.AmenityFilter{})
		if err != nil {
			return nil, err
		}
		metroStops = points
	}

	if mosqueActive {
		points, err := uc.amenityRepo.GetByCategory(ctx, domain.AmenityMosque, domain.AmenityFilter{})
		if err != nil {
			return nil, err
		}
		mosques = points
	}

	admitted := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		// A listing without a charted position cannot satisfy any
		// proximity requirement.
		if !l.HasValidPosition() {
			continue
		}
		lat, lon := l.Position()

		if schoolActive && !uc.reachable(lat, lon, schools, filters.MaxSchoolTime) {
			continue
		}
		if universityActive && !uc.reachable(lat, lon, universities, filters.MaxUniversityTime) {
			continue
		}
		if metroActive && !uc.reachable(lat, lon, metroStops, filters.MetroMaxMinutes) {
			continue
		}
		if mosqueActive && !uc.reachable(lat, lon, mosques, filters.MaxMosqueTime) {
			continue
		}

		admitted = append(admitted, l)
	}

	uc.logger.Debug("Proximity admission complete",
		zap.Int("candidates", len(listings)),
		zap.Int("admitted", len(admitted)),
		zap.Int("schools", len(schools)),
		zap.Int("universities", len(universities)),
		zap.Int("metro_stops", len(metroStops)),
		zap.Int("mosques", len(mosques)),
	)

	return admitted, nil
}

// reachable reports whether any amenity point lies within maxMinutes of
// the listing position. An empty point set is never reachable.
func (uc *ProximityUseCase) reachable(lat, lon float64, points []domain.AmenityPoint, maxMinutes int) bool {
	for _, p := range points {
		d := utils.HaversineDistance(lat, lon, p.Lat, p.Lon)
		if utils.TravelMinutes(d, uc.avgSpeedKmh) <= maxMinutes {
			return true
		}
	}
	return false
}

func filterSchools(points []domain.AmenityPoint, gender, level string) []domain.AmenityPoint {
	out := make([]domain.AmenityPoint, 0, len(points))
	for _, p := range points {
		if gender != "" && !attrEquals(p.Gender, gender) {
			continue
		}
		if level != "" && !attrEquals(p.Level, level) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func filterUniversities(points []domain.AmenityPoint, name string) []domain.AmenityPoint {
	out := make([]domain.AmenityPoint, 0, len(points))
	for _, p := range points {
		if arabictext.Matches(name, p.Name) {
			out = append(out, p)
			continue
		}
		if p.NameEn != nil && strings.Contains(strings.ToLower(*p.NameEn), strings.ToLower(name)) {
			out = append(out, p)
		}
	}
	return out
}

func attrEquals(attr *string, want string) bool {
	return attr != nil && strings.EqualFold(*attr, want)
}
