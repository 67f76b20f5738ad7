package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/pkg/utils"
	"github.com/aqarview/geosearch/internal/pkg/validator"
	"github.com/aqarview/geosearch/internal/usecase"
	"github.com/aqarview/geosearch/internal/usecase/dto"
)

// ListingHandler serves listing search and the derived map overlay.
type ListingHandler struct {
	searchUC  *usecase.SearchUseCase
	overlayUC *usecase.OverlayUseCase
	logger    *zap.Logger
}

func NewListingHandler(
	searchUC *usecase.SearchUseCase,
	overlayUC *usecase.OverlayUseCase,
	logger *zap.Logger,
) *ListingHandler {
	return &ListingHandler{
		searchUC:  searchUC,
		overlayUC: overlayUC,
		logger:    logger,
	}
}

// Search godoc
// @Summary Search listings in a viewport
// @Description Resolves the full query tuple (transaction type, facet filters, free text, viewport bounds) into a listing set. Results are cached by query tuple; a newer request on the same stream cancels the in-flight one.
// @Tags Listings
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Query tuple"
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/listings/search [post]
func (h *ListingHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.StreamID == "" {
		req.StreamID = c.Get("X-Stream-ID")
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.Resolve(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:     result.Total,
		Truncated: result.Truncated,
		CacheHit:  result.CacheHit,
		TimeMSec:  float64(result.TookMs),
	})
}

// Overlay godoc
// @Summary Build the map overlay for a listing set
// @Description Computes the convex boundary ring, per-listing price colors, the recomputed bounding rectangle and the mean center for the charted listings.
// @Tags Listings
// @Accept json
// @Produce json
// @Param request body dto.OverlayRequest true "Charted listings"
// @Success 200 {object} utils.SuccessResponse{data=dto.OverlayResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/listings/overlay [post]
func (h *ListingHandler) Overlay(c *fiber.Ctx) error {
	var req dto.OverlayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.overlayUC.Build(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}
