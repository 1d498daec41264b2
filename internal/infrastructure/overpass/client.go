package overpass

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eatgo-discovery/internal/config"
	"github.com/eatgo-discovery/internal/domain"
	"github.com/eatgo-discovery/internal/domain/repository"
	"github.com/eatgo-discovery/internal/pkg/errors"
	"go.uber.org/zap"
)

const maxBodyExcerpt = 200

// interpreterResponse is the envelope the interpreter wraps elements in.
type interpreterResponse struct {
	Elements []domain.RawElement `json:"elements"`
}

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewClient creates a POI source over the Overpass interpreter. Queries are
// posted as plain text; the interpreter-side timeout and element cap live in
// the query itself. One attempt per call, never retried.
func NewClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.POISource {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Nearby executes one bounded spatial query and returns the raw elements.
// Zero elements is a normal outcome.
func (c *client) Nearby(
	ctx context.Context,
	center domain.Location,
	radius domain.RadiusKm,
	category domain.FoodCategory,
) ([]domain.RawElement, error) {
	query := BuildQuery(center, radius, category)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(query))
	if err != nil {
		c.logger.Error("Failed to create interpreter request", zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	req.Header.Set("Content-Type", "text/plain;charset=UTF-8")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("Calling spatial-query interpreter",
		zap.Int("radius_m", radius.Meters()),
		zap.String("category", category.String()))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Interpreter request failed", zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	// Read the full body before decoding so malformed payloads surface as a
	// structured error with an excerpt, not a downstream decode failure.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read interpreter response", zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Interpreter returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", excerpt(body)))
		return nil, errors.ErrUpstreamUnavailable
	}

	if strings.TrimSpace(string(body)) == "" {
		c.logger.Error("Interpreter returned empty body")
		return nil, errors.ErrUpstreamMalformed
	}

	var parsed interpreterResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Error("Interpreter returned non-JSON body",
			zap.String("body", excerpt(body)))
		return nil, errors.ErrUpstreamMalformed
	}

	c.logger.Debug("Interpreter call successful",
		zap.Int("elements", len(parsed.Elements)),
		zap.Duration("elapsed", time.Since(start)))

	return parsed.Elements, nil
}

func excerpt(body []byte) string {
	if len(body) > maxBodyExcerpt {
		body = body[:maxBodyExcerpt]
	}
	return string(body)
}
