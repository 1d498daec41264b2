package domain

// LocationMode selects how the search center is provided.
type LocationMode string

const (
	ModeCoords LocationMode = "coords"
	ModeText   LocationMode = "text"
)

// RadiusKm is the closed search radius enumeration. Only 1, 3 and 5 km are
// valid; anything else is a client input error.
type RadiusKm int

const (
	Radius1Km RadiusKm = 1
	Radius3Km RadiusKm = 3
	Radius5Km RadiusKm = 5
)

func (r RadiusKm) Valid() bool {
	switch r {
	case Radius1Km, Radius3Km, Radius5Km:
		return true
	}
	return false
}

// Meters converts the radius to the integer meter distance used in spatial
// queries.
func (r RadiusKm) Meters() int {
	return int(r) * 1000
}

// SearchCriteria describes one discovery request. It is created once per
// request and never mutated after Center is resolved.
type SearchCriteria struct {
	Mode          LocationMode
	LocationText  string
	Center        Location
	Radius        RadiusKm
	Category      FoodCategory
	OpenNowApprox bool
}
