package dto

import "github.com/aqarview/geosearch/internal/domain"

// SearchRequest is the full query tuple: transaction type, viewport,
// free text and a partial facet change-set merged over the defaults.
type SearchRequest struct {
	TransactionType string              `json:"transaction_type" validate:"required,oneof=sale rent"`
	Bounds          *BoundsDTO          `json:"bounds,omitempty"`
	Query           string              `json:"query,omitempty"`
	Filters         domain.FilterUpdate `json:"filters,omitempty"`

	// StreamID groups successive requests of one map session; a new
	// request cancels the previous in-flight one on the same stream.
	StreamID string `json:"stream_id,omitempty"`
}

// BoundsDTO is a viewport rectangle in degrees.
type BoundsDTO struct {
	North float64 `json:"north" validate:"min=-90,max=90"`
	South float64 `json:"south" validate:"min=-90,max=90"`
	East  float64 `json:"east" validate:"min=-180,max=180"`
	West  float64 `json:"west" validate:"min=-180,max=180"`
}

func (b BoundsDTO) ToDomain() domain.ViewportBounds {
	return domain.ViewportBounds{
		North: b.North,
		South: b.South,
		East:  b.East,
		West:  b.West,
	}
}

// OverlayRequest carries the charted listing subset the map shell wants
// hull, colors and bounds for.
type OverlayRequest struct {
	Listings []OverlayListingInput `json:"listings" validate:"required,min=1,dive"`
}

// OverlayListingInput is one charted listing: position plus the price
// that drives its marker color.
type OverlayListingInput struct {
	ID    string  `json:"id" validate:"required"`
	Lat   float64 `json:"lat" validate:"min=-90,max=90"`
	Lon   float64 `json:"lon" validate:"min=-180,max=180"`
	Price float64 `json:"price" validate:"min=0"`
}

// AssistantRequest proxies free text to the criteria-extraction service.
type AssistantRequest struct {
	Message   string `json:"message" validate:"required,min=1"`
	SessionID string `json:"session_id,omitempty"`
	Mode      string `json:"mode,omitempty" validate:"omitempty,oneof=exact similar"`
}
