package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/domain"
	"github.com/aqarview/geosearch/internal/domain/repository"
	"github.com/aqarview/geosearch/internal/pkg/errors"
)

// Option lists the filter sheet always offers; the store only
// contributes values outside these sets.
var (
	baseSchoolGenders = []string{"boys", "girls", "both"}
	baseSchoolLevels  = []string{"nursery", "kindergarten", "elementary", "middle", "high"}
)

// FacetUseCase serves the option lists of the filter sheet and the raw
// amenity point sets the map charts.
type FacetUseCase struct {
	listingRepo repository.ListingRepository
	amenityRepo repository.AmenityRepository
	logger      *zap.Logger
}

func NewFacetUseCase(
	listingRepo repository.ListingRepository,
	amenityRepo repository.AmenityRepository,
	logger *zap.Logger,
) *FacetUseCase {
	return &FacetUseCase{
		listingRepo: listingRepo,
		amenityRepo: amenityRepo,
		logger:      logger,
	}
}

// PropertyTypes lists distinct property-type values matching the term.
func (uc *FacetUseCase) PropertyTypes(ctx context.Context, search string) ([]string, error) {
	return uc.listingRepo.DistinctPropertyTypes(ctx, search)
}

// Districts lists distinct district values matching the term.
func (uc *FacetUseCase) Districts(ctx context.Context, search string) ([]string, error) {
	return uc.listingRepo.DistinctDistricts(ctx, search)
}

// SchoolGenders returns the predefined gender options plus whatever
// extra values the store holds.
func (uc *FacetUseCase) SchoolGenders(ctx context.Context, search string) ([]string, error) {
	extras, err := uc.amenityRepo.DistinctSchoolGenders(ctx, search)
	if err != nil {
		return nil, err
	}
	return mergeOptions(baseSchoolGenders, extras, search), nil
}

// SchoolLevels returns the predefined level options plus whatever extra
// values the store holds.
func (uc *FacetUseCase) SchoolLevels(ctx context.Context, search string) ([]string, error) {
	extras, err := uc.amenityRepo.DistinctSchoolLevels(ctx, search)
	if err != nil {
		return nil, err
	}
	return mergeOptions(baseSchoolLevels, extras, search), nil
}

// AmenityPoints returns the reference points of one category, narrowed
// by its classification filters.
func (uc *FacetUseCase) AmenityPoints(
	ctx context.Context,
	category string,
	filter domain.AmenityFilter,
) ([]domain.AmenityPoint, error) {
	cat := domain.AmenityCategory(category)
	if !cat.Valid() {
		return nil, errors.ErrInvalidAmenityCategory.WithDetails(map[string]interface{}{
			"category": category,
		})
	}
	return uc.amenityRepo.GetByCategory(ctx, cat, filter)
}

// mergeOptions prepends the predefined options that match the search
// term, keeping store extras after them.
func mergeOptions(base, extras []string, search string) []string {
	out := make([]string, 0, len(base)+len(extras))
	needle := strings.ToLower(search)
	for _, opt := range base {
		if needle == "" || strings.Contains(strings.ToLower(opt), needle) {
			out = append(out, opt)
		}
	}
	return append(out, extras...)
}
