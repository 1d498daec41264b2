package overpass

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eatgo-discovery/internal/domain"
)

func TestBuildQuery_Radii(t *testing.T) {
	center := domain.Location{Lat: 25.033, Lng: 121.565}

	tests := []struct {
		radius domain.RadiusKm
		meters int
	}{
		{domain.Radius1Km, 1000},
		{domain.Radius3Km, 3000},
		{domain.Radius5Km, 5000},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dkm", tt.radius), func(t *testing.T) {
			q := BuildQuery(center, tt.radius, domain.CategoryAny)
			assert.Contains(t, q, fmt.Sprintf("(around:%d,25.033,121.565)", tt.meters))
		})
	}
}

func TestBuildQuery_Wildcard(t *testing.T) {
	q := BuildQuery(domain.Location{Lat: 25.033, Lng: 121.565}, domain.Radius3Km, domain.CategoryAny)

	assert.Contains(t, q, "[out:json][timeout:25];")
	assert.Contains(t, q, `["amenity"~"restaurant|cafe|fast_food|food_court"]`)
	assert.Contains(t, q, `["shop"~"bakery|confectionery|ice_cream|beverages"]`)
	assert.Contains(t, q, "out center 120;")

	// Wildcard never narrows by cuisine.
	assert.NotContains(t, q, "cuisine")
}

func TestBuildQuery_CuisineClause(t *testing.T) {
	q := BuildQuery(domain.Location{Lat: 25.033, Lng: 121.565}, domain.Radius3Km, domain.CategoryRamen)

	assert.Contains(t, q, `["amenity"~"restaurant|cafe|fast_food|food_court"]["cuisine"~"ramen|japanese"]`)
	assert.Contains(t, q, `["shop"~"bakery|confectionery|ice_cream|beverages"]["cuisine"~"ramen|japanese"]`)

	// The broad clauses stay in the union alongside the narrowed ones.
	assert.Equal(t, 2, strings.Count(q, `"cuisine"~"ramen|japanese"`))
	assert.Equal(t, 4, strings.Count(q, "nwr(around:3000,"))
}
