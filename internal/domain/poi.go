package domain

import (
	"fmt"
	"math"
)

// POI is the canonical, pipeline-internal venue shape. Created during
// normalization, enriched with a score, immutable afterward. Owned by the
// pipeline invocation that created it and never shared across requests.
type POI struct {
	ID                  string
	Name                string
	Coordinate          Location
	Address             string
	HasScheduleMetadata bool
	Types               []string
	DistanceKm          float64
	VibeScore           float64
}

// POIID derives the globally unique canonical id from the raw type+id pair.
func POIID(elementType string, id int64) string {
	return fmt.Sprintf("osm:%s:%d", elementType, id)
}

// DedupKey quantizes the distance to the search center at meter resolution
// and couples it with the name. Two records with the same name at the same
// distance (within 1 m) are treated as one physical venue; first seen wins.
// The key is deliberately approximate and order-dependent.
func (p *POI) DedupKey() string {
	return fmt.Sprintf("%s:%d", p.Name, int(math.Round(p.DistanceKm*1000)))
}

// ResultSet is the terminal artifact of one pipeline invocation: at most
// MaxResults POIs ordered by descending score, plus the resolved center.
type ResultSet struct {
	Center  Location
	Results []POI
}

// MaxResults is the shortlist size every response is truncated to.
const MaxResults = 5
