package domain

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeResult is a resolved place: the coordinate plus the display name the
// geocoder attached to its best candidate.
type GeocodeResult struct {
	Location    Location
	DisplayName string
}
