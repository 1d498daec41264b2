package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatgo-discovery/internal/domain"
	"github.com/eatgo-discovery/internal/pkg/utils"
)

var testCenter = domain.Location{Lat: 25.033, Lng: 121.565}

func ptr(f float64) *float64 { return &f }

func node(id int64, lat, lng float64, tags map[string]string) domain.RawElement {
	return domain.RawElement{Type: "node", ID: id, Lat: ptr(lat), Lon: ptr(lng), Tags: tags}
}

func TestNormalize(t *testing.T) {
	t.Run("node and way both normalize", func(t *testing.T) {
		elements := []domain.RawElement{
			node(1, 25.034, 121.566, map[string]string{"name": "A", "amenity": "restaurant"}),
			{
				Type: "way", ID: 2,
				Center: &domain.RawCenter{Lat: 25.035, Lon: 121.567},
				Tags:   map[string]string{"name": "B", "shop": "bakery", "opening_hours": "Mo-Su"},
			},
		}

		pois := normalize(testCenter, elements)
		require.Len(t, pois, 2)

		assert.Equal(t, "osm:node:1", pois[0].ID)
		assert.Equal(t, "A", pois[0].Name)
		assert.False(t, pois[0].HasScheduleMetadata)
		assert.Equal(t, []string{"restaurant"}, pois[0].Types)

		assert.Equal(t, "osm:way:2", pois[1].ID)
		assert.True(t, pois[1].HasScheduleMetadata)
		assert.Equal(t, []string{"bakery"}, pois[1].Types)
	})

	t.Run("distance matches haversine to the center", func(t *testing.T) {
		elements := []domain.RawElement{
			node(1, 25.040, 121.570, map[string]string{"name": "A"}),
		}
		pois := normalize(testCenter, elements)
		require.Len(t, pois, 1)

		want := utils.HaversineKm(testCenter.Lat, testCenter.Lng, 25.040, 121.570)
		assert.InDelta(t, want, pois[0].DistanceKm, 1e-9)
		assert.GreaterOrEqual(t, pois[0].DistanceKm, 0.0)
	})

	t.Run("drops elements without coordinates", func(t *testing.T) {
		elements := []domain.RawElement{
			{Type: "relation", ID: 9, Tags: map[string]string{"name": "ghost"}},
		}
		assert.Empty(t, normalize(testCenter, elements))
	})

	t.Run("drops elements without a name", func(t *testing.T) {
		elements := []domain.RawElement{
			node(1, 25.034, 121.566, map[string]string{"amenity": "restaurant"}),
		}
		assert.Empty(t, normalize(testCenter, elements))
	})

	t.Run("deduplicates same name within a meter, first seen wins", func(t *testing.T) {
		elements := []domain.RawElement{
			node(1, 25.034, 121.566, map[string]string{"name": "同名店", "amenity": "restaurant"}),
			node(2, 25.034, 121.566, map[string]string{"name": "同名店", "amenity": "cafe"}),
		}

		pois := normalize(testCenter, elements)
		require.Len(t, pois, 1)
		assert.Equal(t, "osm:node:1", pois[0].ID)
		assert.Equal(t, []string{"restaurant"}, pois[0].Types)
	})

	t.Run("same name at different distance survives", func(t *testing.T) {
		elements := []domain.RawElement{
			node(1, 25.034, 121.566, map[string]string{"name": "連鎖店"}),
			node(2, 25.040, 121.570, map[string]string{"name": "連鎖店"}),
		}

		pois := normalize(testCenter, elements)
		assert.Len(t, pois, 2)
	})

	t.Run("preserves input order", func(t *testing.T) {
		elements := []domain.RawElement{
			node(3, 25.040, 121.570, map[string]string{"name": "far"}),
			node(1, 25.034, 121.566, map[string]string{"name": "near"}),
		}

		pois := normalize(testCenter, elements)
		require.Len(t, pois, 2)
		assert.Equal(t, "far", pois[0].Name)
		assert.Equal(t, "near", pois[1].Name)
	})
}
