package repository

import (
	"context"

	"github.com/eatgo-discovery/internal/domain"
)

// Geocoder resolves free-text place names to coordinates. Implementations
// make exactly one upstream attempt per call; retrying is the caller's
// explicit decision, never the client's.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*domain.GeocodeResult, error)
}
