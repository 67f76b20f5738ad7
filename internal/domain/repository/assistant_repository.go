package repository

import (
	"context"

	"github.com/aqarview/geosearch/internal/domain"
)

// AssistantRepository is the conversational criteria-extraction
// collaborator. Natural-language understanding happens behind it; the
// core only consumes the structured reply.
type AssistantRepository interface {
	Query(ctx context.Context, q domain.AssistantQuery) (*domain.AssistantReply, error)
}
