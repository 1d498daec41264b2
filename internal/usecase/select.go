package usecase

import (
	"sort"

	"github.com/eatgo-discovery/internal/domain"
)

// selectTop applies the open-now approximation filter, sorts by score
// descending and truncates to the shortlist size. The sort is stable so ties
// keep their upstream iteration order and identical inputs produce identical
// output. An empty result is a valid outcome.
func selectTop(pois []domain.POI, openNowOnly bool) []domain.POI {
	filtered := pois
	if openNowOnly {
		filtered = make([]domain.POI, 0, len(pois))
		for _, p := range pois {
			if p.HasScheduleMetadata {
				filtered = append(filtered, p)
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].VibeScore > filtered[j].VibeScore
	})

	if len(filtered) > domain.MaxResults {
		filtered = filtered[:domain.MaxResults]
	}
	return filtered
}
