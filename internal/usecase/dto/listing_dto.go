package dto

import "github.com/aqarview/geosearch/internal/domain"

// ListingDTO is the wire form of a listing: coerced numeric price and
// area plus the display strings the shell renders verbatim.
type ListingDTO struct {
	ID           string  `json:"id"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	HasPosition  bool    `json:"has_position"`
	Title        string  `json:"title"`
	Price        float64 `json:"price"`
	PriceLabel   string  `json:"price_label"`
	Area         float64 `json:"area"`
	AreaLabel    string  `json:"area_label"`
	PropertyType string  `json:"property_type"`
	District     string  `json:"district"`
	City         string  `json:"city"`
	Location     string  `json:"location"`
	ImageURL     *string `json:"image_url,omitempty"`
	Rooms        *int    `json:"rooms,omitempty"`
	Baths        *int    `json:"baths,omitempty"`
	Halls        *int    `json:"halls,omitempty"`
	Purpose      string  `json:"purpose"`
}

// ConvertListing maps a domain listing to its wire form, resolving the
// charted position and formatting the display labels.
func ConvertListing(l domain.Listing) ListingDTO {
	lat, lon := l.Position()
	price := l.Price()
	area := l.Area()

	return ListingDTO{
		ID:           l.ID,
		Lat:          lat,
		Lon:          lon,
		HasPosition:  l.HasValidPosition(),
		Title:        l.DisplayName(),
		Price:        price,
		PriceLabel:   domain.FormatPrice(price),
		Area:         area,
		AreaLabel:    domain.FormatArea(area),
		PropertyType: l.PropertyType,
		District:     l.District,
		City:         l.City,
		Location:     l.Location(),
		ImageURL:     l.ImageURL,
		Rooms:        l.Rooms,
		Baths:        l.Baths,
		Halls:        l.Halls,
		Purpose:      l.Purpose,
	}
}

// ConvertListings maps a listing slice, preserving order.
func ConvertListings(listings []domain.Listing) []ListingDTO {
	out := make([]ListingDTO, 0, len(listings))
	for _, l := range listings {
		out = append(out, ConvertListing(l))
	}
	return out
}
