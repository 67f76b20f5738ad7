package domain

import (
	"fmt"

	"github.com/aqarview/geosearch/internal/pkg/errors"
	"github.com/aqarview/geosearch/internal/pkg/utils"
)

// DefaultCity restricts the search scope; the dataset covers Riyadh only.
const DefaultCity = "الرياض"

// FilterState is the full facet set of a search. Range bounds use 0 for
// "no constraint on this side". Structural counts are strings so the
// "other" sentinel can ride along with concrete values.
type FilterState struct {
	PropertyType string `json:"property_type"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`

	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
	AreaMin  float64 `json:"area_min"`
	AreaMax  float64 `json:"area_max"`

	Bedrooms    string `json:"bedrooms"`
	LivingRooms string `json:"living_rooms"`
	Bathrooms   string `json:"bathrooms"`

	SchoolGender  string `json:"school_gender"`
	SchoolLevel   string `json:"school_level"`
	MaxSchoolTime int    `json:"max_school_time"`

	SelectedUniversity string `json:"selected_university"`
	MaxUniversityTime  int    `json:"max_university_time"`

	NearMetro       bool `json:"near_metro"`
	MetroMaxMinutes int  `json:"metro_max_minutes"`

	NearHospitals bool `json:"near_hospitals"`

	NearMosques   bool `json:"near_mosques"`
	MaxMosqueTime int  `json:"max_mosque_time"`
}

// DefaultFilterState returns the facet defaults of a fresh session.
func DefaultFilterState() FilterState {
	return FilterState{
		City:              DefaultCity,
		MaxSchoolTime:     15,
		MaxUniversityTime: 30,
		MetroMaxMinutes:   1,
		MaxMosqueTime:     30,
	}
}

// FilterUpdate is a partial change-set keyed by the facet's JSON name.
type FilterUpdate map[string]interface{}

// Apply merges a partial change-set into a copy of the state. Unknown
// keys are rejected so a typo cannot silently drop a facet.
func (f FilterState) Apply(update FilterUpdate) (FilterState, error) {
	next := f
	for key, value := range update {
		switch key {
		case "property_type":
			next.PropertyType = toString(value)
		case "city":
			next.City = toString(value)
		case "neighborhood":
			next.Neighborhood = toString(value)
		case "min_price":
			next.MinPrice = utils.ParseNumber(value)
		case "max_price":
			next.MaxPrice = utils.ParseNumber(value)
		case "area_min":
			next.AreaMin = utils.ParseNumber(value)
		case "area_max":
			next.AreaMax = utils.ParseNumber(value)
		case "bedrooms":
			next.Bedrooms = toString(value)
		case "living_rooms":
			next.LivingRooms = toString(value)
		case "bathrooms":
			next.Bathrooms = toString(value)
		case "school_gender":
			next.SchoolGender = toString(value)
		case "school_level":
			next.SchoolLevel = toString(value)
		case "max_school_time":
			next.MaxSchoolTime = int(utils.ParseNumber(value))
		case "selected_university":
			next.SelectedUniversity = toString(value)
		case "max_university_time":
			next.MaxUniversityTime = int(utils.ParseNumber(value))
		case "near_metro":
			next.NearMetro = toBool(value)
		case "metro_max_minutes":
			next.MetroMaxMinutes = int(utils.ParseNumber(value))
		case "near_hospitals":
			next.NearHospitals = toBool(value)
		case "near_mosques":
			next.NearMosques = toBool(value)
		case "max_mosque_time":
			next.MaxMosqueTime = int(utils.ParseNumber(value))
		default:
			return f, errors.ErrUnknownFilterKey.WithDetails(map[string]interface{}{
				"key": key,
			})
		}
	}
	return next, nil
}

// HasActiveFilters reports whether any facet differs from its default.
// Facets whose defaults are non-zero on purpose (city, the travel-time
// thresholds) do not count: a threshold only matters once its requirement
// facet is switched on.
func (f FilterState) HasActiveFilters() bool {
	return f.PropertyType != "" ||
		f.Neighborhood != "" ||
		f.MinPrice > 0 ||
		f.MaxPrice > 0 ||
		f.AreaMin > 0 ||
		f.AreaMax > 0 ||
		f.Bedrooms != "" ||
		f.Bathrooms != "" ||
		f.LivingRooms != "" ||
		f.SchoolGender != "" ||
		f.SchoolLevel != "" ||
		f.SelectedUniversity != "" ||
		f.NearMetro ||
		f.NearMosques
}

// SchoolRequirementActive reports whether the school proximity facet is on.
func (f FilterState) SchoolRequirementActive() bool {
	return f.SchoolGender != "" || f.SchoolLevel != ""
}

// UniversityRequirementActive reports whether a university was selected.
func (f FilterState) UniversityRequirementActive() bool {
	return f.SelectedUniversity != ""
}

// MetroRequirementActive reports whether the metro proximity facet is on.
func (f FilterState) MetroRequirementActive() bool {
	return f.NearMetro
}

// MosqueRequirementActive reports whether the mosque proximity facet is on.
func (f FilterState) MosqueRequirementActive() bool {
	return f.NearMosques
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	default:
		return false
	}
}
