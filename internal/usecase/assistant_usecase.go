package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/domain"
	"github.com/aqarview/geosearch/internal/domain/repository"
	"github.com/aqarview/geosearch/internal/usecase/dto"
)

const defaultAssistantMode = "exact"

// AssistantUseCase proxies free text to the criteria-extraction service
// and translates the structured reply into a mergeable facet change-set.
type AssistantUseCase struct {
	assistantRepo repository.AssistantRepository
	criteria      *CriteriaUseCase
	logger        *zap.Logger
}

func NewAssistantUseCase(
	assistantRepo repository.AssistantRepository,
	criteria *CriteriaUseCase,
	logger *zap.Logger,
) *AssistantUseCase {
	return &AssistantUseCase{
		assistantRepo: assistantRepo,
		criteria:      criteria,
		logger:        logger,
	}
}

// Query forwards the message and post-processes the reply. A
// clarification reply passes through untouched; a criteria reply comes
// back with the extracted filter update alongside the result listings.
func (uc *AssistantUseCase) Query(ctx context.Context, req dto.AssistantRequest) (*dto.AssistantResponse, error) {
	mode := req.Mode
	if mode == "" {
		mode = defaultAssistantMode
	}

	reply, err := uc.assistantRepo.Query(ctx, domain.AssistantQuery{
		Message:   req.Message,
		SessionID: req.SessionID,
		Mode:      mode,
	})
	if err != nil {
		return nil, err
	}

	if reply.NeedsClarification {
		return &dto.AssistantResponse{
			NeedsClarification:   true,
			ClarificationMessage: reply.ClarificationMessage,
		}, nil
	}

	update := uc.criteria.ExtractFilters(reply.Criteria)

	uc.logger.Info("Assistant query resolved",
		zap.String("session_id", req.SessionID),
		zap.String("mode", mode),
		zap.Int("facets", len(update)),
		zap.Int("listings", len(reply.Results)),
	)

	return &dto.AssistantResponse{
		FilterUpdate: update,
		Listings:     dto.ConvertListings(reply.Results),
		SearchMode:   reply.SearchMode,
	}, nil
}
