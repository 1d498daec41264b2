package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eatgo-discovery/internal/pkg/errors"
	"github.com/eatgo-discovery/internal/pkg/utils"
	"github.com/eatgo-discovery/internal/usecase"
	"github.com/eatgo-discovery/internal/usecase/dto"
)

// SearchHandler exposes the discovery pipeline over HTTP.
type SearchHandler struct {
	discoveryUC *usecase.DiscoveryUseCase
	logger      *zap.Logger
}

func NewSearchHandler(discoveryUC *usecase.DiscoveryUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		discoveryUC: discoveryUC,
		logger:      logger,
	}
}

// Search runs one discovery request.
// @Summary Find nearby food venues
// @Description Resolves the location (coordinates or free text), queries the public POI index and returns a ranked shortlist of up to 5 venues.
// @Tags search
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search criteria"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/search [post]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrClientInput.WithMessage("invalid request body"))
	}

	result, err := h.discoveryUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// Categories lists the closed category enumeration.
// @Summary List food categories
// @Tags search
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /api/v1/categories [get]
func (h *SearchHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.discoveryUC.Categories())
}
