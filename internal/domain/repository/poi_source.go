package repository

import (
	"context"

	"github.com/eatgo-discovery/internal/domain"
)

// POISource fetches raw venue records around a center point. The element
// cap and server-side timeout are embedded in the query itself; a zero-length
// result is success, not an error. One upstream attempt per call.
type POISource interface {
	Nearby(ctx context.Context, center domain.Location, radius domain.RadiusKm, category domain.FoodCategory) ([]domain.RawElement, error)
}
