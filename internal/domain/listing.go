package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/aqarview/geosearch/internal/pkg/utils"
)

// TransactionType is the purpose of a search: buying or renting.
type TransactionType string

const (
	TransactionSale TransactionType = "sale"
	TransactionRent TransactionType = "rent"
)

func (t TransactionType) Valid() bool {
	return t == TransactionSale || t == TransactionRent
}

// Purpose maps the transaction type to the store's Arabic purpose value.
func (t TransactionType) Purpose() string {
	if t == TransactionRent {
		return "للايجار"
	}
	return "للبيع"
}

// CountOther is the sentinel for structural-count facets where the user
// picked "other/unspecified"; it is never pushed down as an equality
// predicate.
const CountOther = "other"

// Listing is a property record as stored in the properties collection.
// Price and area arrive untyped from the store (sometimes comma-grouped
// strings) and are exposed through Price()/Area().
type Listing struct {
	ID           string  `json:"id" db:"id"`
	Lat          float64 `json:"lat" db:"lat"`
	Lon          float64 `json:"lon" db:"lon"`
	FinalLat     *float64 `json:"final_lat,omitempty" db:"final_lat"`
	FinalLon     *float64 `json:"final_lon,omitempty" db:"final_lon"`
	Title        string  `json:"title" db:"title"`
	PriceRaw     string  `json:"price_num" db:"price_num"`
	PropertyType string  `json:"property_type" db:"property_type"`
	District     string  `json:"district" db:"district"`
	City         string  `json:"city" db:"city"`
	ImageURL     *string `json:"image_url,omitempty" db:"image_url"`
	Rooms        *int    `json:"rooms,omitempty" db:"rooms"`
	Baths        *int    `json:"baths,omitempty" db:"baths"`
	Halls        *int    `json:"halls,omitempty" db:"halls"`
	AreaRaw      string  `json:"area_m2" db:"area_m2"`
	Purpose      string  `json:"purpose" db:"purpose"`
}

func (l *Listing) Price() float64 {
	return utils.ParseNumber(l.PriceRaw)
}

func (l *Listing) Area() float64 {
	return utils.ParseNumber(l.AreaRaw)
}

// Position returns the charted coordinates, preferring the geocoded
// final_lat/final_lon pair when present.
func (l *Listing) Position() (lat, lon float64) {
	if l.FinalLat != nil && l.FinalLon != nil {
		return *l.FinalLat, *l.FinalLon
	}
	return l.Lat, l.Lon
}

// HasValidPosition reports whether the listing can be charted. A (0, 0)
// pair means the geocoder produced nothing; such listings stay in list
// views but never reach the map.
func (l *Listing) HasValidPosition() bool {
	lat, lon := l.Position()
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return !(lat == 0 && lon == 0)
}

// DisplayName returns the listing title, falling back to the generic
// Arabic "property".
func (l *Listing) DisplayName() string {
	if l.Title != "" {
		return l.Title
	}
	return "عقار"
}

// Location joins district and city for display, or the Arabic
// "unspecified location" when both are empty.
func (l *Listing) Location() string {
	parts := make([]string, 0, 2)
	if l.District != "" {
		parts = append(parts, l.District)
	}
	if l.City != "" {
		parts = append(parts, l.City)
	}
	if len(parts) == 0 {
		return "موقع غير محدد"
	}
	return strings.Join(parts, ", ")
}

// FormatPrice renders a price with thousands grouping and the riyal unit.
func FormatPrice(price float64) string {
	return groupThousands(price) + " ر.س"
}

// FormatArea renders an area with thousands grouping and the m² unit.
func FormatArea(area float64) string {
	return groupThousands(area) + " م²"
}

func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	if frac != "" {
		out += "." + frac
	}
	return out
}
