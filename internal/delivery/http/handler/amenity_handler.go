package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/domain"
	"github.com/aqarview/geosearch/internal/pkg/utils"
	"github.com/aqarview/geosearch/internal/usecase"
	"github.com/aqarview/geosearch/internal/usecase/dto"
)

// AmenityHandler serves amenity reference points and the facet option
// lists of the filter sheet.
type AmenityHandler struct {
	facetUC *usecase.FacetUseCase
	logger  *zap.Logger
}

func NewAmenityHandler(facetUC *usecase.FacetUseCase, logger *zap.Logger) *AmenityHandler {
	return &AmenityHandler{
		facetUC: facetUC,
		logger:  logger,
	}
}

// GetByCategory godoc
// @Summary Amenity points of one category
// @Description Returns schools, universities, mosques or metro stations. School lookups support gender/level classification filters; schools and universities support a name search term.
// @Tags Amenities
// @Produce json
// @Param category path string true "Category" Enums(school, university, mosque, metro)
// @Param gender query string false "School gender filter"
// @Param level query string false "School level filter"
// @Param q query string false "Name search term"
// @Success 200 {object} utils.SuccessResponse{data=dto.AmenityResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/amenities/{category} [get]
func (h *AmenityHandler) GetByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	filter := domain.AmenityFilter{
		Gender: c.Query("gender"),
		Level:  c.Query("level"),
		Search: c.Query("q"),
	}

	points, err := h.facetUC.AmenityPoints(c.Context(), category, filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.AmenityResponse{
		Category: category,
		Points:   points,
		Total:    len(points),
	}, &utils.Meta{Total: len(points)})
}

// PropertyTypes godoc
// @Summary Property-type facet options
// @Tags Facets
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} utils.SuccessResponse{data=dto.FacetResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/facets/property-types [get]
func (h *AmenityHandler) PropertyTypes(c *fiber.Ctx) error {
	return h.sendOptions(c)(h.facetUC.PropertyTypes(c.Context(), c.Query("q")))
}

// Districts godoc
// @Summary District facet options
// @Tags Facets
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} utils.SuccessResponse{data=dto.FacetResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/facets/districts [get]
func (h *AmenityHandler) Districts(c *fiber.Ctx) error {
	return h.sendOptions(c)(h.facetUC.Districts(c.Context(), c.Query("q")))
}

// SchoolGenders godoc
// @Summary School gender facet options
// @Tags Facets
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} utils.SuccessResponse{data=dto.FacetResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/facets/school-genders [get]
func (h *AmenityHandler) SchoolGenders(c *fiber.Ctx) error {
	return h.sendOptions(c)(h.facetUC.SchoolGenders(c.Context(), c.Query("q")))
}

// SchoolLevels godoc
// @Summary School level facet options
// @Tags Facets
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} utils.SuccessResponse{data=dto.FacetResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/facets/school-levels [get]
func (h *AmenityHandler) SchoolLevels(c *fiber.Ctx) error {
	return h.sendOptions(c)(h.facetUC.SchoolLevels(c.Context(), c.Query("q")))
}

func (h *AmenityHandler) sendOptions(c *fiber.Ctx) func([]string, error) error {
	return func(options []string, err error) error {
		if err != nil {
			return utils.SendError(c, err)
		}
		return utils.SendSuccess(c, dto.FacetResponse{
			Options: options,
			Total:   len(options),
		}, nil)
	}
}
