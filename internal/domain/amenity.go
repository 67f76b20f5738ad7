package domain

// AmenityCategory names a reference collection of points used for
// proximity checks.
type AmenityCategory string

const (
	AmenitySchool     AmenityCategory = "school"
	AmenityUniversity AmenityCategory = "university"
	AmenityMosque     AmenityCategory = "mosque"
	AmenityMetro      AmenityCategory = "metro"
)

func (c AmenityCategory) Valid() bool {
	switch c {
	case AmenitySchool, AmenityUniversity, AmenityMosque, AmenityMetro:
		return true
	}
	return false
}

// AmenityPoint is a school, university, mosque or metro stop. The core
// reads these for proximity computation and never mutates them.
type AmenityPoint struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	NameEn   *string `json:"name_en,omitempty" db:"name_en"`
	Lat      float64 `json:"lat" db:"lat"`
	Lon      float64 `json:"lon" db:"lon"`
	Gender   *string `json:"gender,omitempty" db:"gender"`
	Level    *string `json:"primary_level,omitempty" db:"primary_level"`
	District *string `json:"district,omitempty" db:"district"`
}

// AmenityFilter narrows an amenity lookup by classification attributes.
type AmenityFilter struct {
	Gender string
	Level  string
	Search string
}
