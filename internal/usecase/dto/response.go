package dto

import "github.com/eatgo-discovery/internal/domain"

// SearchResponse is the terminal artifact returned to the caller.
type SearchResponse struct {
	Center  domain.Location `json:"center"`
	Results []Restaurant    `json:"results"`
	Meta    Meta            `json:"meta"`
}

// Restaurant is one ranked venue. IsOpenNow is present only when the caller
// requested the open-now approximation, and reflects schedule metadata, not
// live status.
type Restaurant struct {
	PlaceID    string   `json:"placeId"`
	Name       string   `json:"name"`
	Address    string   `json:"address,omitempty"`
	IsOpenNow  *bool    `json:"isOpenNow,omitempty"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	DistanceKm float64  `json:"distanceKm"`
	VibeScore  float64  `json:"vibeScore"`
	MapsURL    string   `json:"mapsUrl"`
	Types      []string `json:"types,omitempty"`
}

// Meta carries data provenance for the response.
type Meta struct {
	Provider string `json:"provider"`
	Note     string `json:"note"`
}

// CategoriesResponse lists the closed category enumeration in display order.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
