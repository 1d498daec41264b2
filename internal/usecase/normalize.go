package usecase

import (
	"github.com/eatgo-discovery/internal/domain"
	"github.com/eatgo-discovery/internal/pkg/utils"
)

// normalize maps raw heterogeneous elements into canonical POIs and collapses
// duplicates. Elements without a resolvable coordinate or name are dropped.
// The dedup key couples name with the meter-quantized distance to the search
// center; the first occurrence in input order survives, so the output order
// is deterministic given the upstream order.
func normalize(center domain.Location, elements []domain.RawElement) []domain.POI {
	seen := make(map[string]struct{}, len(elements))
	pois := make([]domain.POI, 0, len(elements))

	for i := range elements {
		el := &elements[i]

		coord, ok := el.Coordinate()
		if !ok {
			continue
		}

		name, ok := el.Name()
		if !ok {
			continue
		}

		poi := domain.POI{
			ID:                  domain.POIID(el.Type, el.ID),
			Name:                name,
			Coordinate:          coord,
			Address:             el.Address(),
			HasScheduleMetadata: el.HasScheduleMetadata(),
			Types:               []string{el.DisplayType()},
			DistanceKm:          utils.HaversineKm(center.Lat, center.Lng, coord.Lat, coord.Lng),
		}

		key := poi.DedupKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		pois = append(pois, poi)
	}

	return pois
}
