package repository

import (
	"context"

	"github.com/aqarview/geosearch/internal/domain"
)

// AmenityRepository reads the reference collections (schools,
// universities, mosques, metro stations) used for proximity checks.
type AmenityRepository interface {
	// GetByCategory returns amenity points of one category, narrowed by
	// classification attributes where the category supports them.
	GetByCategory(ctx context.Context, category domain.AmenityCategory, filter domain.AmenityFilter) ([]domain.AmenityPoint, error)

	// DistinctSchoolGenders returns gender values beyond the predefined
	// set, matching the search term.
	DistinctSchoolGenders(ctx context.Context, search string) ([]string, error)

	// DistinctSchoolLevels returns level values beyond the predefined
	// set, matching the search term.
	DistinctSchoolLevels(ctx context.Context, search string) ([]string, error)
}
