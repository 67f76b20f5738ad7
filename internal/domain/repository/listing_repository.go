package repository

import (
	"context"

	"github.com/aqarview/geosearch/internal/domain"
)

// ListingRepository queries the properties collection. The core never
// writes to it.
type ListingRepository interface {
	// Search returns listings matching the server-expressible predicate
	// set, capped at q.Limit rows.
	Search(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error)

	// DistinctPropertyTypes returns property-type values matching the
	// search term, for facet option lists.
	DistinctPropertyTypes(ctx context.Context, search string) ([]string, error)

	// DistinctDistricts returns district values, optionally narrowed by a
	// search term.
	DistinctDistricts(ctx context.Context, search string) ([]string, error)
}
