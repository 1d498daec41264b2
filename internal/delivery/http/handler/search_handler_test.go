package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eatgo-discovery/internal/config"
	"github.com/eatgo-discovery/internal/delivery/http/handler"
	"github.com/eatgo-discovery/internal/domain"
	"github.com/eatgo-discovery/internal/infrastructure/overpass"
	pkgerrors "github.com/eatgo-discovery/internal/pkg/errors"
	"github.com/eatgo-discovery/internal/usecase"
	"github.com/eatgo-discovery/internal/usecase/dto"
)

// MockGeocoder is a mock of repository.Geocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

// MockPOISource is a mock of repository.POISource
type MockPOISource struct {
	mock.Mock
}

func (m *MockPOISource) Nearby(
	ctx context.Context,
	center domain.Location,
	radius domain.RadiusKm,
	category domain.FoodCategory,
) ([]domain.RawElement, error) {
	args := m.Called(ctx, center, radius, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawElement), args.Error(1)
}

func newTestApp(geocoder *MockGeocoder, source *MockPOISource) *fiber.App {
	uc := usecase.NewDiscoveryUseCase(geocoder, source, usecase.MetadataScorer{}, zap.NewNop())
	h := handler.NewSearchHandler(uc, zap.NewNop())

	app := fiber.New()
	app.Post("/api/v1/search", h.Search)
	app.Get("/api/v1/categories", h.Categories)
	return app
}

func postSearch(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	var envelope struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope), "error body must be valid JSON")
	require.NotEmpty(t, envelope.Error)
	return envelope.Error
}

func TestSearchHandler_Search(t *testing.T) {
	lat := 25.033
	lng := 121.565

	t.Run("successful coords search", func(t *testing.T) {
		geocoder := &MockGeocoder{}
		source := &MockPOISource{}

		elLat := 25.0345
		elLng := 121.565
		elements := []domain.RawElement{
			{Type: "node", ID: 7, Lat: &elLat, Lon: &elLng, Tags: map[string]string{
				"name": "測試店", "amenity": "restaurant", "opening_hours": "Mo-Su",
			}},
		}
		source.On("Nearby", mock.Anything, domain.Location{Lat: lat, Lng: lng}, domain.Radius3Km, domain.CategoryAny).
			Return(elements, nil)

		app := newTestApp(geocoder, source)
		resp := postSearch(t, app, dto.SearchRequest{
			Mode: "coords", Lat: &lat, Lng: &lng, RadiusKm: 3, Category: "不限",
		})

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result dto.SearchResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, lat, result.Center.Lat)
		require.Len(t, result.Results, 1)
		assert.Equal(t, "osm:node:7", result.Results[0].PlaceID)
		assert.Equal(t, "測試店", result.Results[0].Name)
		assert.NotEmpty(t, result.Results[0].MapsURL)
		assert.Equal(t, "OpenStreetMap/Overpass + Nominatim", result.Meta.Provider)
	})

	t.Run("blank text mode returns 400", func(t *testing.T) {
		app := newTestApp(&MockGeocoder{}, &MockPOISource{})
		resp := postSearch(t, app, dto.SearchRequest{
			Mode: "text", LocationText: "  ", RadiusKm: 3, Category: "不限",
		})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		decodeError(t, resp)
	})

	t.Run("malformed request body returns 400", func(t *testing.T) {
		app := newTestApp(&MockGeocoder{}, &MockPOISource{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		decodeError(t, resp)
	})

	t.Run("geocoder finds nothing returns 400", func(t *testing.T) {
		geocoder := &MockGeocoder{}
		source := &MockPOISource{}
		geocoder.On("Geocode", mock.Anything, "火星").
			Return(nil, pkgerrors.ErrLocationNotFound)

		app := newTestApp(geocoder, source)
		resp := postSearch(t, app, dto.SearchRequest{
			Mode: "text", LocationText: "火星", RadiusKm: 3, Category: "不限",
		})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		decodeError(t, resp)
	})

	t.Run("non-JSON upstream body returns 500 with JSON envelope", func(t *testing.T) {
		// Real overpass client against a misbehaving upstream, through the
		// whole pipeline and handler.
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, "<html>busy</html>")
		}))
		defer upstream.Close()

		source := overpass.NewClient(&config.OverpassConfig{
			BaseURL:        upstream.URL,
			UserAgent:      "EatGo test",
			RequestTimeout: 5 * time.Second,
		}, zap.NewNop())

		uc := usecase.NewDiscoveryUseCase(&MockGeocoder{}, source, usecase.MetadataScorer{}, zap.NewNop())
		h := handler.NewSearchHandler(uc, zap.NewNop())
		app := fiber.New()
		app.Post("/api/v1/search", h.Search)

		resp := postSearch(t, app, dto.SearchRequest{
			Mode: "coords", Lat: &lat, Lng: &lng, RadiusKm: 3, Category: "不限",
		})

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		msg := decodeError(t, resp)
		// Short human-readable message, not the upstream body.
		assert.NotContains(t, msg, "<html>")
	})
}

func TestSearchHandler_Categories(t *testing.T) {
	app := newTestApp(&MockGeocoder{}, &MockPOISource{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.CategoriesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Len(t, result.Categories, 10)
	assert.Equal(t, "不限", result.Categories[0])
}
