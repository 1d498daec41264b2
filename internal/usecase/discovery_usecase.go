package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eatgo-discovery/internal/domain"
	"github.com/eatgo-discovery/internal/domain/repository"
	"github.com/eatgo-discovery/internal/pkg/errors"
	"github.com/eatgo-discovery/internal/pkg/utils"
	"github.com/eatgo-discovery/internal/pkg/validator"
	"github.com/eatgo-discovery/internal/usecase/dto"
)

// Response provenance. The note warns that the free data source may throttle
// or return empty results.
const (
	providerName = "OpenStreetMap/Overpass + Nominatim"
	providerNote = "免費資料偶爾會限流或回空，已做防呆處理"
)

// DiscoveryUseCase runs the discovery pipeline: validate input, resolve the
// location, build and execute the bounded spatial query, normalize and
// deduplicate, score, and select the shortlist. One invocation per request,
// strictly sequential, no state shared between invocations. Every failure is
// translated to an AppError before it leaves this boundary.
type DiscoveryUseCase struct {
	geocoder  repository.Geocoder
	poiSource repository.POISource
	scorer    Scorer
	logger    *zap.Logger
}

func NewDiscoveryUseCase(
	geocoder repository.Geocoder,
	poiSource repository.POISource,
	scorer Scorer,
	logger *zap.Logger,
) *DiscoveryUseCase {
	return &DiscoveryUseCase{
		geocoder:  geocoder,
		poiSource: poiSource,
		scorer:    scorer,
		logger:    logger,
	}
}

// Search executes one pipeline invocation.
func (uc *DiscoveryUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	log := uc.logger.With(zap.String("invocation_id", uuid.NewString()))

	criteria, err := uc.buildCriteria(req)
	if err != nil {
		return nil, translate(err)
	}

	if criteria.Mode == domain.ModeText {
		resolved, err := uc.geocoder.Geocode(ctx, criteria.LocationText)
		if err != nil {
			log.Warn("Location resolution failed",
				zap.String("text", criteria.LocationText),
				zap.Error(err))
			return nil, translate(err)
		}
		criteria.Center = resolved.Location
		log.Debug("Location resolved",
			zap.String("display_name", resolved.DisplayName),
			zap.Float64("lat", criteria.Center.Lat),
			zap.Float64("lng", criteria.Center.Lng))
	}

	elements, err := uc.poiSource.Nearby(ctx, criteria.Center, criteria.Radius, criteria.Category)
	if err != nil {
		log.Error("POI fetch failed", zap.Error(err))
		return nil, translate(err)
	}

	pois := normalize(criteria.Center, elements)
	for i := range pois {
		pois[i].VibeScore = uc.scorer.Score(Signals{
			DistanceKm:          pois[i].DistanceKm,
			HasScheduleMetadata: pois[i].HasScheduleMetadata,
		})
	}

	top := selectTop(pois, criteria.OpenNowApprox)

	log.Info("Discovery pipeline completed",
		zap.Int("raw_elements", len(elements)),
		zap.Int("normalized", len(pois)),
		zap.Int("selected", len(top)))

	return buildResponse(criteria, top), nil
}

// Categories returns the closed category enumeration in display order.
func (uc *DiscoveryUseCase) Categories() dto.CategoriesResponse {
	cats := domain.AllCategories()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.String())
	}
	return dto.CategoriesResponse{Categories: names}
}

// buildCriteria is the ValidatingInput stage. Requests missing required
// fields for their declared mode are rejected before any upstream call.
func (uc *DiscoveryUseCase) buildCriteria(req dto.SearchRequest) (*domain.SearchCriteria, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrClientInput
	}

	category, err := domain.ParseFoodCategory(req.Category)
	if err != nil {
		return nil, errors.ErrClientInput.WithMessage("unknown category")
	}

	criteria := &domain.SearchCriteria{
		Mode:          domain.LocationMode(req.Mode),
		Radius:        domain.RadiusKm(req.RadiusKm),
		Category:      category,
		OpenNowApprox: req.OpenNow,
	}
	if !criteria.Radius.Valid() {
		return nil, errors.ErrClientInput.WithMessage("radiusKm must be 1, 3 or 5")
	}

	switch criteria.Mode {
	case domain.ModeText:
		criteria.LocationText = strings.TrimSpace(req.LocationText)
		if criteria.LocationText == "" {
			return nil, errors.ErrClientInput.WithMessage("locationText is required for text mode")
		}
	case domain.ModeCoords:
		if req.Lat == nil || req.Lng == nil || !utils.ValidCoordinates(*req.Lat, *req.Lng) {
			return nil, errors.ErrClientInput.WithMessage("lat/lng required for coords mode")
		}
		criteria.Center = domain.Location{Lat: *req.Lat, Lng: *req.Lng}
	default:
		return nil, errors.ErrClientInput.WithMessage("mode must be coords or text")
	}

	return criteria, nil
}

// buildResponse assembles the wire shape. IsOpenNow is populated only when
// the caller asked for the open-now approximation.
func buildResponse(criteria *domain.SearchCriteria, pois []domain.POI) *dto.SearchResponse {
	results := make([]dto.Restaurant, 0, len(pois))
	for _, p := range pois {
		r := dto.Restaurant{
			PlaceID:    p.ID,
			Name:       p.Name,
			Address:    p.Address,
			Lat:        p.Coordinate.Lat,
			Lng:        p.Coordinate.Lng,
			DistanceKm: p.DistanceKm,
			VibeScore:  p.VibeScore,
			MapsURL:    mapsURL(p.Coordinate.Lat, p.Coordinate.Lng, p.Name),
			Types:      p.Types,
		}
		if criteria.OpenNowApprox {
			open := p.HasScheduleMetadata
			r.IsOpenNow = &open
		}
		results = append(results, r)
	}

	return &dto.SearchResponse{
		Center:  criteria.Center,
		Results: results,
		Meta: dto.Meta{
			Provider: providerName,
			Note:     providerNote,
		},
	}
}

// mapsURL builds a maps search link for one venue.
func mapsURL(lat, lng float64, name string) string {
	u, _ := url.Parse("https://www.google.com/maps/search/")
	q := u.Query()
	q.Set("api", "1")
	if name != "" {
		q.Set("query", fmt.Sprintf("%s @ %v,%v", name, lat, lng))
	} else {
		q.Set("query", fmt.Sprintf("%v,%v", lat, lng))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// translate guarantees nothing but AppError escapes the pipeline boundary.
func translate(err error) error {
	if _, ok := err.(*errors.AppError); ok {
		return err
	}
	return errors.ErrInternalServer
}
