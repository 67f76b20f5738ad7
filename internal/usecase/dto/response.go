package dto

import (
	"github.com/aqarview/geosearch/internal/domain"
)

// SearchResponse is the resolved listing set plus query metadata.
type SearchResponse struct {
	Listings  []ListingDTO `json:"listings"`
	Total     int          `json:"total"`
	Truncated bool         `json:"truncated"`
	CacheHit  bool         `json:"cache_hit"`
	TookMs    int64        `json:"took_ms"`
}

// PointDTO is a bare coordinate pair.
type PointDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MarkerDTO is one map marker: position, price color on the
// green-to-red ramp and the formatted price label.
type MarkerDTO struct {
	ID         string  `json:"id"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Color      string  `json:"color"`
	PriceLabel string  `json:"price_label"`
}

// OverlayResponse is the derived map geometry for a listing set: the
// convex boundary ring, per-listing markers, the recomputed bounding
// rectangle and the mean center.
type OverlayResponse struct {
	Hull    []PointDTO  `json:"hull,omitempty"`
	Markers []MarkerDTO `json:"markers"`
	Bounds  *BoundsDTO  `json:"bounds,omitempty"`
	Center  *PointDTO   `json:"center,omitempty"`
	Total   int         `json:"total"`
}

// AssistantResponse is either a clarification prompt or the extracted
// facet change-set alongside the assistant's result listings.
type AssistantResponse struct {
	NeedsClarification   bool                `json:"needs_clarification"`
	ClarificationMessage string              `json:"clarification_message,omitempty"`
	FilterUpdate         domain.FilterUpdate `json:"filter_update,omitempty"`
	Listings             []ListingDTO        `json:"listings,omitempty"`
	SearchMode           string              `json:"search_mode,omitempty"`
}

// FacetResponse is a facet option list for the filter sheet.
type FacetResponse struct {
	Options []string `json:"options"`
	Total   int      `json:"total"`
}

// AmenityResponse is a reference-point set of one category.
type AmenityResponse struct {
	Category string                `json:"category"`
	Points   []domain.AmenityPoint `json:"points"`
	Total    int                   `json:"total"`
}
