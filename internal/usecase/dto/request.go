package dto

// SearchRequest is the wire shape of one discovery request. Mode-conditional
// requirements (coords need lat/lng, text needs locationText) are semantic
// checks done by the use case, not struct tags.
//
// MinRating and PriceTags are accepted but ignored: the current data source
// cannot supply rating or price signals. They stay in the shape so clients
// remain wire-compatible with providers that can.
type SearchRequest struct {
	Mode         string   `json:"mode" validate:"required,oneof=coords text"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	LocationText string   `json:"locationText,omitempty"`
	RadiusKm     int      `json:"radiusKm" validate:"required,oneof=1 3 5"`
	Category     string   `json:"category" validate:"required"`
	OpenNow      bool     `json:"openNow"`
	MinRating    float64  `json:"minRating"`
	PriceTags    []string `json:"priceTags"`
}
