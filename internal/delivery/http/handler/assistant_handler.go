package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/pkg/utils"
	"github.com/aqarview/geosearch/internal/pkg/validator"
	"github.com/aqarview/geosearch/internal/usecase"
	"github.com/aqarview/geosearch/internal/usecase/dto"
)

// AssistantHandler proxies free-text queries to the criteria-extraction
// collaborator.
type AssistantHandler struct {
	assistantUC *usecase.AssistantUseCase
	logger      *zap.Logger
}

func NewAssistantHandler(assistantUC *usecase.AssistantUseCase, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistantUC: assistantUC,
		logger:      logger,
	}
}

// Query godoc
// @Summary Conversational search
// @Description Forwards free text to the assistant collaborator. The reply is either a clarification prompt or the extracted facet change-set plus result listings.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.AssistantRequest true "Free-text query"
// @Success 200 {object} utils.SuccessResponse{data=dto.AssistantResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/assistant/query [post]
func (h *AssistantHandler) Query(c *fiber.Ctx) error {
	var req dto.AssistantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.assistantUC.Query(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Listings)})
}
