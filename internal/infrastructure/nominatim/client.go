package nominatim

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/eatgo-discovery/internal/config"
	"github.com/eatgo-discovery/internal/domain"
	"github.com/eatgo-discovery/internal/domain/repository"
	"github.com/eatgo-discovery/internal/pkg/errors"
	"go.uber.org/zap"
)

// maxBodyExcerpt bounds how much of an upstream body ends up in logs.
// Bodies never reach the caller verbatim.
const maxBodyExcerpt = 200

// searchResult mirrors the relevant parts of the search payload. Coordinates
// arrive as strings and must be parsed.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type client struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	acceptLanguage string
	logger         *zap.Logger
}

// NewClient creates a geocoding client against the Nominatim search API.
// The upstream is a shared public resource: the client identifies itself with
// a stable User-Agent and makes exactly one attempt per call, never retrying.
func NewClient(cfg *config.NominatimConfig, logger *zap.Logger) repository.Geocoder {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:        cfg.BaseURL,
		userAgent:      cfg.UserAgent,
		acceptLanguage: cfg.AcceptLanguage,
		logger:         logger,
	}
}

// Geocode resolves query to the single best candidate's coordinate.
func (c *client) Geocode(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")
	params.Set("addressdetails", "0")

	reqURL := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create geocode request", zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", c.acceptLanguage)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Geocoding request failed", zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read geocoding response", zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Geocoding service returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", excerpt(body)))
		return nil, errors.ErrUpstreamUnavailable
	}

	if strings.TrimSpace(string(body)) == "" {
		c.logger.Error("Geocoding service returned empty body")
		return nil, errors.ErrUpstreamMalformed
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		c.logger.Error("Geocoding service returned non-JSON body",
			zap.String("body", excerpt(body)))
		return nil, errors.ErrUpstreamMalformed
	}

	if len(results) == 0 {
		c.logger.Info("Geocoding found no candidates", zap.String("query", query))
		return nil, errors.ErrLocationNotFound
	}

	item := results[0]
	lat, latErr := strconv.ParseFloat(item.Lat, 64)
	lng, lngErr := strconv.ParseFloat(item.Lon, 64)
	if latErr != nil || lngErr != nil ||
		math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		c.logger.Warn("Geocoding candidate has non-finite coordinates",
			zap.String("lat", item.Lat),
			zap.String("lon", item.Lon))
		return nil, errors.ErrLocationNotFound
	}

	c.logger.Debug("Geocoding successful",
		zap.String("query", query),
		zap.Float64("lat", lat),
		zap.Float64("lng", lng),
		zap.Duration("elapsed", time.Since(start)))

	displayName := item.DisplayName
	if displayName == "" {
		displayName = query
	}

	return &domain.GeocodeResult{
		Location:    domain.Location{Lat: lat, Lng: lng},
		DisplayName: displayName,
	}, nil
}

func excerpt(body []byte) string {
	if len(body) > maxBodyExcerpt {
		body = body[:maxBodyExcerpt]
	}
	return string(body)
}
