package domain

// RawElement is one heterogeneous record as returned by the spatial-query
// interpreter. Nodes carry direct coordinates; ways and relations carry a
// representative center point instead. The union is resolved once during
// normalization and the raw record discarded.
type RawElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *RawCenter        `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// RawCenter is the representative point of an area geometry.
type RawCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Coordinate resolves the element's position: direct lat/lon wins, then the
// representative center. ok is false when the element has neither and must be
// dropped.
func (e *RawElement) Coordinate() (Location, bool) {
	if e.Lat != nil && e.Lon != nil {
		return Location{Lat: *e.Lat, Lng: *e.Lon}, true
	}
	if e.Center != nil {
		return Location{Lat: e.Center.Lat, Lng: e.Center.Lon}, true
	}
	return Location{}, false
}

// nameTagOrder is the preference list for resolving a display name.
var nameTagOrder = []string{"name", "brand", "name:zh", "name:zh-Hant"}

// Name resolves the element's display name from the tag preference list.
// ok is false when no usable name exists and the element must be dropped.
func (e *RawElement) Name() (string, bool) {
	for _, key := range nameTagOrder {
		if v := e.Tags[key]; v != "" {
			return v, true
		}
	}
	return "", false
}

// addressTagOrder lists the structured address fragments in assembly order.
// Fragments concatenate without separators, which is how addresses in the
// primary coverage area are written.
var addressTagOrder = []string{
	"addr:city", "addr:district", "addr:subdistrict", "addr:street", "addr:housenumber",
}

// Address assembles a best-effort address from structured tags, falling back
// to addr:full. Empty string means no address is available.
func (e *RawElement) Address() string {
	var s string
	for _, key := range addressTagOrder {
		s += e.Tags[key]
	}
	if s == "" {
		return e.Tags["addr:full"]
	}
	return s
}

// HasScheduleMetadata reports whether any opening-hours style tag is present.
// This is the only open/closed signal this data source carries.
func (e *RawElement) HasScheduleMetadata() bool {
	return e.Tags["opening_hours"] != ""
}

// DisplayType returns the venue kind tag used for display, amenity first.
func (e *RawElement) DisplayType() string {
	if v := e.Tags["amenity"]; v != "" {
		return v
	}
	if v := e.Tags["shop"]; v != "" {
		return v
	}
	return "food"
}
